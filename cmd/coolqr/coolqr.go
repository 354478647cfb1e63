package coolqr

import (
	"fmt"

	"github.com/Badsnus/coolqr/internal/adapters/config"
	"github.com/Badsnus/coolqr/internal/domain/utils/validator"
	"github.com/Badsnus/coolqr/pkg/logger"
	qr "github.com/Badsnus/coolqr/pkg/qrcode"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type options struct {
	configPath string
	output     string
}

// flag name -> config key
var flagKeys = map[string]string{
	"debug":         "settings.debug",
	"size":          "qr.size",
	"fill":          "qr.fill-color",
	"back":          "qr.back-color",
	"style":         "qr.style",
	"shape":         "qr.dot-shape",
	"level":         "qr.level",
	"version":       "qr.version",
	"quiet-zone":    "qr.quiet-zone",
	"logo":          "qr.logo.path",
	"logo-circular": "qr.logo.circular",
	"logo-ratio":    "qr.logo.size-ratio",
	"logo-border":   "qr.logo.border",
	"mask-color":    "qr.mask.color",
	"mask-opacity":  "qr.mask.opacity",
	"output-dir":    "qr.output-dir",
}

// NewCommand returns the root command. Flags override the config file and
// COOLQR_* env vars.
func NewCommand() *cobra.Command {
	var opts options
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "coolqr [data]",
		Short:        "Render styled QR codes",
		Long:         "coolqr renders data as a QR code with square or round dots, an optional centred logo and a translucent colour mask.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a yaml config (default ./config.yaml)")
	flags.StringVarP(&opts.output, "output", "o", "", "write the image here instead of the output directory; format follows the extension")
	flags.Bool("debug", false, "enable debug logging")
	flags.Int("size", qr.DefaultSize, "image side in pixels")
	flags.String("fill", qr.DefaultFillColor, "dot colour: name or #RRGGBB")
	flags.String("back", qr.DefaultBackColor, "background colour: name or #RRGGBB")
	flags.String("style", "", "colour preset, overrides --fill and --back")
	flags.String("shape", string(qr.DefaultDotShape), "dot shape: square or circle")
	flags.String("level", qr.DefaultLevel.String(), "error correction level: L, M, Q or H")
	flags.Int("version", 0, "force a QR version 1..40, 0 picks the smallest that fits")
	flags.Int("quiet-zone", 0, "light modules around the symbol")
	flags.String("logo", "", "logo image placed at the centre")
	flags.Bool("logo-circular", true, "crop the logo to a circle")
	flags.Float64("logo-ratio", qr.DefaultLogoSizeRatio, "logo side relative to the image side")
	flags.Int("logo-border", qr.DefaultLogoBorder, "white border around the logo in pixels")
	flags.String("mask-color", "", "colour of a translucent layer over the image")
	flags.Float64("mask-opacity", qr.DefaultMaskOpacity, "opacity of the mask layer, 0..1")
	flags.String("output-dir", "codes", "directory for generated files when --output is not set")

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, opts options, data string) error {
	cfg, err := config.Load(v, opts.configPath)
	if err != nil {
		return err
	}
	if err = logger.Init(cfg.Logger); err != nil {
		return err
	}

	qrCFG := cfg.QR
	qrCFG.Data = data
	qrCFG.Logger = logger.Log.Named("qr").SugaredLogger
	if err = validator.Config(qrCFG); err != nil {
		return err
	}

	if opts.output != "" {
		qrCFG.OutputPath = opts.output
		if _, err = qrCFG.Render(); err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), opts.output)
		return err
	}

	app, err := New(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			app.Logger.Errorf("failed to close render cache: %v", err)
		}
	}()

	id, path, err := app.Generator.Generate(cmd.Context(), data)
	if err != nil {
		return err
	}
	app.Logger.Debugf("generated qr code %s", id)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}
