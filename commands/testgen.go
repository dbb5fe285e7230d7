package commands

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
)

// Example will be written out to a file, .json and .bin
// Filename should have no path and no extension
type Example struct {
	Filename string
	Obj      weave.Marshaller
}

// TestGenCmd writes the JSON and the protobuf encoding of every example
// into the directory given as the first argument, "testdata" by default.
// Client libraries test their codecs against these files.
func TestGenCmd(examples []Example, args []string) error {
	outdir := "testdata"
	if len(args) > 0 {
		outdir = args[0]
	}
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}

	for _, ex := range examples {
		js, err := json.MarshalIndent(ex.Obj, "", "  ")
		if err != nil {
			return errors.Wrapf(errors.ErrInput, "%s json: %s", ex.Filename, err)
		}
		if err := write(filepath.Join(outdir, ex.Filename+".json"), js); err != nil {
			return err
		}

		pb, err := ex.Obj.Marshal()
		if err != nil {
			return errors.Wrapf(err, "%s protobuf", ex.Filename)
		}
		if err := write(filepath.Join(outdir, ex.Filename+".bin"), pb); err != nil {
			return err
		}
	}
	return nil
}

func write(path string, content []byte) error {
	if err := ioutil.WriteFile(path, content, 0644); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
