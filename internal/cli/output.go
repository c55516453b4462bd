package cli

import (
	"encoding/json"
	"io"

	apperrors "github.com/darkkaiser/devops-info-service/internal/pkg/errors"
	"gopkg.in/yaml.v3"
)

// outputFormat 결과 출력 형식
type outputFormat string

const (
	outputYAML outputFormat = "yaml"
	outputJSON outputFormat = "json"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case outputYAML, outputJSON:
		return f, nil
	default:
		return "", apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 출력 형식입니다: %q (yaml 또는 json)", s)
	}
}

func writeOutput(w io.Writer, format outputFormat, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
}
