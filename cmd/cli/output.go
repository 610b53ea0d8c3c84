package cli

import (
	"fmt"
	"io"

	"github.com/turtacn/certgen/internal/domain/models"
	"github.com/turtacn/certgen/pkg/utils"
)

// csrResponse is the generate-csr success payload.
type csrResponse struct {
	Success bool `json:"success"`
	*models.CSRResult
}

// p12Response is the create-p12 success payload.
type p12Response struct {
	Success bool `json:"success"`
	*models.P12Result
}

// parseCertResponse is the parse-cert success payload.
type parseCertResponse struct {
	Success bool                    `json:"success"`
	Info    *models.CertificateInfo `json:"info"`
}

// writeJSONLine writes v as a single JSON line.
func writeJSONLine(w io.Writer, v interface{}) error {
	line, err := utils.ToJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, line)
	return err
}
