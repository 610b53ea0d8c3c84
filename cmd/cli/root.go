package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	appService "github.com/turtacn/certgen/internal/application/service"
	"github.com/turtacn/certgen/internal/config"
	"github.com/turtacn/certgen/internal/infrastructure/crypto"
	"github.com/turtacn/certgen/internal/infrastructure/monitoring"
	"github.com/turtacn/certgen/pkg/constants"
	"github.com/turtacn/certgen/pkg/errors"
	"github.com/turtacn/certgen/pkg/logger"
)

// errNoCommand is returned when certgen is invoked without a subcommand.
var errNoCommand = stderrors.New("no command given")

// runtime holds everything one invocation of certgen builds and tears down.
// runtime 保存一次 certgen 调用所创建和释放的全部组件。
type runtime struct {
	stdout io.Writer
	stderr io.Writer

	cfg     *config.Config
	log     logger.Logger
	metrics *monitoring.Metrics
	tracing *monitoring.TracingManager
	service appService.CertificateAppService
}

// newRootCommand builds the `certgen` command tree.
// newRootCommand 构建 `certgen` 命令树。
func newRootCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "certgen",
		Short: "Generate CSRs, package PKCS#12 archives and inspect X.509 certificates.",
		Long: `certgen issues and packages X.509 identity material for client applications.
Each command prints exactly one JSON line on stdout; diagnostics go to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return errNoCommand
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.HasParent() {
				return nil
			}
			return rt.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML configuration file")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("metrics-file", "", "Write Prometheus metrics to this textfile after the run")

	cmd.AddCommand(
		newGenerateCSRCommand(rt),
		newCreateP12Command(rt),
		newParseCertCommand(rt),
	)

	// Only the three operations above are recognized.
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("unknown command %q for %q", "help", "certgen")
		},
	})

	return cmd
}

// setup loads configuration and wires the services for the selected command.
func (rt *runtime) setup(cmd *cobra.Command) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return errors.ErrInvalidRequest("failed to read --config").WithCause(err)
	}

	cfg, err := config.LoadConfig(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	rt.cfg = cfg

	log, err := monitoring.NewZapLogger(&cfg.Log, rt.stderr)
	if err != nil {
		return errors.ErrInvalidRequest("failed to initialize logger").WithCause(err)
	}
	rt.log = log

	tracing, err := monitoring.NewTracingManager(&cfg.Tracing, log)
	if err != nil {
		return errors.ErrInvalidRequest("failed to initialize tracing").WithCause(err)
	}
	rt.tracing = tracing

	rt.metrics = monitoring.NewMetrics(cfg.Metrics.Namespace)

	rt.service = appService.NewCertificateAppService(
		crypto.NewCSRGenerator(log),
		crypto.NewP12Packager(log),
		crypto.NewCertificateInspector(log),
		monitoring.NewMetricsAdapter(rt.metrics),
		tracing,
		log.WithComponent("certificate_app_service"),
	)
	return nil
}

// close flushes metrics, traces and logs.
func (rt *runtime) close(ctx context.Context) {
	if rt.metrics != nil && rt.cfg != nil {
		if err := rt.metrics.WriteTextfile(rt.cfg.Metrics.Textfile); err != nil && rt.log != nil {
			rt.log.Warn(ctx, "Failed to write metrics textfile",
				logger.String("path", rt.cfg.Metrics.Textfile),
				logger.Error(err),
			)
		}
	}
	if rt.tracing != nil {
		_ = rt.tracing.Shutdown(ctx)
	}
	if rt.log != nil {
		_ = rt.log.Sync()
	}
}

// Run executes certgen with args and returns the process exit code.
// Run 使用给定参数执行 certgen 并返回进程退出码。
func Run(args []string, stdout, stderr io.Writer) int {
	ctx := context.Background()
	rt := &runtime{stdout: stdout, stderr: stderr}

	root := newRootCommand(rt)
	root.SetArgs(args)
	root.SetOut(stderr)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	defer rt.close(ctx)

	switch {
	case err == nil:
		return constants.ExitCodeSuccess
	case stderrors.Is(err, errNoCommand):
		return constants.ExitCodeFailure
	}

	if _, ok := errors.AsCertError(err); !ok {
		err = errors.ErrInvalidRequest(err.Error())
	}
	rt.reportFailure(ctx, err)
	return constants.ExitCodeFailure
}

// Execute is the main entry point for the CLI application.
// It runs certgen with the process arguments and exits with its status code.
// Execute 是 CLI 应用程序的主入口点。
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// reportFailure writes the failure payload to stdout and the diagnostic to stderr.
func (rt *runtime) reportFailure(ctx context.Context, err error) {
	switch {
	case rt.log == nil:
		fmt.Fprintf(rt.stderr, "Error: %v\n", err)
	case errors.HasCode(err, constants.ErrCodeInvalidRequest):
		// Operation failures are already logged by the application service.
		rt.log.Error(ctx, "Invalid command", err)
	}

	if writeErr := writeJSONLine(rt.stdout, errors.ToErrorResponse(err)); writeErr != nil {
		fmt.Fprintf(rt.stderr, "Error: %v\n", writeErr)
	}
}
