package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
)

// WriteText writes the gear outline as one "x y" line per vertex, closing
// vertex included.
func WriteText(w io.Writer, outline []r2.Vec) error {
	for _, v := range outline {
		if _, err := fmt.Fprintf(w, "%f %f\n", v.X, v.Y); err != nil {
			return err
		}
	}
	return nil
}

// CreateText writes the gear outline coordinate listing to a file.
func CreateText(path string, outline []r2.Vec) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	if err := WriteText(w, outline); err != nil {
		return err
	}
	return w.Flush()
}
