package cli

import (
	"github.com/spf13/cobra"
)

// newParseCertCommand builds `certgen parse-cert`.
// newParseCertCommand 构建 `certgen parse-cert` 命令。
func newParseCertCommand(rt *runtime) *cobra.Command {
	var certPath string

	cmd := &cobra.Command{
		Use:   "parse-cert",
		Short: "Print the subject, issuer, serial, validity and signature algorithm of a PEM certificate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := rt.service.ParseCertificate(cmd.Context(), certPath)
			if err != nil {
				return err
			}
			return writeJSONLine(rt.stdout, parseCertResponse{Success: true, Info: info})
		},
	}

	cmd.Flags().StringVar(&certPath, "cert-path", "", "Path of the PEM certificate")
	_ = cmd.MarkFlagRequired("cert-path")

	return cmd
}
