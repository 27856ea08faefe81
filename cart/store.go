package cart

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// Save writes the cart to a local file so it survives a client restart.
func (c *Cart) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load restores a cart from its saved file. A missing file yields an empty
// cart, not an error.
func Load(path string) (*Cart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, err
	}
	c := New()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}
