package cli

import (
	"github.com/spf13/cobra"

	"github.com/turtacn/certgen/internal/domain/models"
)

// newCreateP12Command builds `certgen create-p12`.
// newCreateP12Command 构建 `certgen create-p12` 命令。
func newCreateP12Command(rt *runtime) *cobra.Command {
	var (
		req    models.P12Request
		legacy bool
	)

	cmd := &cobra.Command{
		Use:   "create-p12",
		Short: "Package a PEM certificate and private key into a PKCS#12 archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Legacy = rt.cfg.P12.Legacy
			if cmd.Flags().Changed("legacy") {
				req.Legacy = legacy
			}

			result, err := rt.service.CreateP12(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeJSONLine(rt.stdout, p12Response{Success: true, P12Result: result})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.CertPath, "cert-path", "", "Path of the PEM certificate")
	flags.StringVar(&req.KeyPath, "key-path", "", "Path of the PEM private key")
	flags.StringVar(&req.P12Path, "p12-path", "", "Output path of the PKCS#12 archive")
	flags.StringVar(&req.Password, "password", "", "Archive password; empty writes an unencrypted archive")
	flags.StringVar(&req.KeyPassword, "key-password", "", "Password of an encrypted PKCS#8 private key")
	flags.BoolVar(&legacy, "legacy", false, "Use 3DES and a SHA-1 MAC for older importers")

	for _, name := range []string{"cert-path", "key-path", "p12-path"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
