// mkicons writes the extension's toolbar icons, icon16.png, icon48.png and
// icon128.png, into the current directory.
// Usage: go run ./cmd/mkicons
package main

import (
	"os"
	"path/filepath"

	"skyscanner-time-converter/internal/config"
	"skyscanner-time-converter/internal/icon"
	"skyscanner-time-converter/internal/ui"
)

func main() {
	con := ui.NewConsole(os.Stdout, os.Stderr)
	if err := run(con, "."); err != nil {
		con.Error(err.Error())
		os.Exit(1)
	}
}

// run renders every manifest size into dir, stopping at the first file
// that cannot be written.
func run(con *ui.Console, dir string) error {
	r := icon.New(icon.DefaultFace)
	for _, size := range config.Sizes {
		name := config.FileName(size)
		ic := r.Render(size)
		if err := icon.Save(filepath.Join(dir, name), ic.Img); err != nil {
			return err
		}
		con.Created(name)
	}
	return nil
}
