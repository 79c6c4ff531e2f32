package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/idparse/constants"
	"github.com/joseph-ayodele/idparse/internal/fields"
	"github.com/joseph-ayodele/idparse/internal/ocrtext"
	"github.com/joseph-ayodele/idparse/internal/router"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	var (
		docType   = flag.String("type", string(constants.NID), "document type tag (NID, BO_ACCOUNT, TIN)")
		normalize = flag.Bool("normalize", false, "apply conservative OCR cleanup before extraction")
		pretty    = flag.Bool("pretty", false, "indent the JSON output")
	)
	flag.Parse()

	var (
		data []byte
		err  error
	)
	switch flag.NArg() {
	case 0:
		data, err = io.ReadAll(os.Stdin)
	case 1:
		data, err = os.ReadFile(flag.Arg(0))
	default:
		logger.Error("usage", "cmd", "idextract [-type NID] [-normalize] [file]")
		os.Exit(2)
	}
	if err != nil {
		logger.Error("read input", "error", err)
		os.Exit(1)
	}

	text := string(data)
	if *normalize {
		text = ocrtext.Normalize(text)
	}

	rt := router.New(fields.Options{}, logger)
	res := rt.Route(*docType, text)

	var out []byte
	if *pretty {
		out, err = json.MarshalIndent(res.Rendered(), "", "  ")
	} else {
		out, err = res.RenderedJSON()
	}
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
