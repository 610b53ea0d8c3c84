package cli

import (
	"github.com/spf13/cobra"

	"github.com/turtacn/certgen/internal/domain/models"
	"github.com/turtacn/certgen/pkg/constants"
	"github.com/turtacn/certgen/pkg/errors"
)

// newGenerateCSRCommand builds `certgen generate-csr`.
// newGenerateCSRCommand 构建 `certgen generate-csr` 命令。
func newGenerateCSRCommand(rt *runtime) *cobra.Command {
	var (
		dn        models.DistinguishedName
		keyPath   string
		csrPath   string
		keyFormat string
	)

	cmd := &cobra.Command{
		Use:   "generate-csr",
		Short: "Generate an RSA-2048 private key and a PKCS#10 CSR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := constants.KeyFormat(rt.cfg.KeyGen.KeyFormat)
			if cmd.Flags().Changed("key-format") {
				format = constants.KeyFormat(keyFormat)
			}
			if format != constants.KeyFormatPKCS8 && format != constants.KeyFormatRSA {
				return errors.ErrInvalidRequest("--key-format must be pkcs8 or rsa").
					WithMetadata("key_format", keyFormat)
			}

			result, err := rt.service.GenerateCSR(cmd.Context(), models.CSRRequest{
				Subject:   dn,
				KeyPath:   keyPath,
				CSRPath:   csrPath,
				KeyFormat: format,
			})
			if err != nil {
				return err
			}
			return writeJSONLine(rt.stdout, csrResponse{Success: true, CSRResult: result})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&dn.CommonName, "common-name", "", "Common name (CN)")
	flags.StringVar(&dn.Organization, "organization", "", "Organization (O)")
	flags.StringVar(&dn.OrganizationalUnit, "organizational-unit", "", "Organizational unit (OU)")
	flags.StringVar(&dn.Country, "country", "", "Country (C)")
	flags.StringVar(&dn.State, "state", "", "State or province (ST)")
	flags.StringVar(&dn.Locality, "locality", "", "Locality (L)")
	flags.StringVar(&dn.Email, "email", "", "Email address")
	flags.StringVar(&keyPath, "key-path", "", "Output path of the PEM private key")
	flags.StringVar(&csrPath, "csr-path", "", "Output path of the PEM CSR")
	flags.StringVar(&keyFormat, "key-format", string(constants.DefaultKeyFormat), "Private key encoding (pkcs8 or rsa)")

	for _, name := range []string{
		"common-name", "organization", "organizational-unit", "country",
		"state", "locality", "email", "key-path", "csr-path",
	} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
