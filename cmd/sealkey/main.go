// Command sealkey encrypts a secret read from stdin with CRYPTO_KEY and prints
// the enc: value to paste into OPENAI_API_KEY or GEMINI_API_KEY.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
)

func main() {
	sealer, err := config.NewSealer(os.Getenv("CRYPTO_KEY"))
	if err != nil {
		config.Logger.WithError(err).Fatal("Invalid CRYPTO_KEY")
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		config.Logger.WithError(err).Fatal("Failed to read secret from stdin")
	}

	sealed, err := sealer.Seal(strings.TrimSpace(line))
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to seal secret")
	}
	fmt.Println(sealed)
}
