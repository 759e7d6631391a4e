package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// loadDotenv loads the local .env file when present. A missing file is not
// an error; anything else is reported to the caller.
func loadDotenv() error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}
