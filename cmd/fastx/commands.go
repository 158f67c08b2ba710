package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/kentwait/fastrust/config"
	"github.com/kentwait/fastrust/fasta"
	"github.com/kentwait/fastrust/fields"
)

func wrapFile(logger *log.Logger, cfg *config.Config, in, out string) error {
	// Check the width before reading anything.
	if err := fasta.CheckWidth(cfg.LineWidth); err != nil {
		return err
	}
	records, err := fasta.ReadFile(in)
	if err != nil {
		return err
	}
	logger.Info("parsed fasta", "path", in, "records", len(records))

	if err := fasta.WriteFile(out, records, cfg.LineWidth); err != nil {
		return err
	}
	logger.Info("wrote fasta", "path", out, "records", len(records),
		"line_width", cfg.LineWidth)
	return nil
}

func exportFile(logger *log.Logger, cfg *config.Config, in, out string) error {
	format, err := fields.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	records, err := fasta.ReadFile(in)
	if err != nil {
		return err
	}
	logger.Info("parsed fasta", "path", in, "records", len(records))

	if err := createWith(out, func(w io.Writer) error {
		return fields.Encode(w, format, records)
	}); err != nil {
		return err
	}
	logger.Info("wrote records", "path", out, "format", format,
		"records", len(records))
	return nil
}

func importFile(logger *log.Logger, cfg *config.Config, in, out string) error {
	format, err := fields.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	if err := fasta.CheckWidth(cfg.LineWidth); err != nil {
		return err
	}

	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()
	records, err := fields.Decode(f, format)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	logger.Info("read records", "path", in, "format", format,
		"records", len(records))

	if err := fasta.WriteFile(out, records, cfg.LineWidth); err != nil {
		return err
	}
	logger.Info("wrote fasta", "path", out, "records", len(records),
		"line_width", cfg.LineWidth)
	return nil
}

func countFile(logger *log.Logger, w io.Writer, in string) error {
	records, err := fasta.ReadFile(in)
	if err != nil {
		return err
	}
	logger.Debug("parsed fasta", "path", in, "records", len(records))
	_, err = fmt.Fprintln(w, len(records))
	return err
}

// createWith creates path and passes it to write. The file is closed on every
// path out, and a close error is reported if nothing failed before it.
func createWith(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return write(f)
}
