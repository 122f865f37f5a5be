package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	munsell "github.com/ChrisGVE/MunsellSpace-sub002"
	"github.com/ChrisGVE/MunsellSpace-sub002/renotation"
)

var rootCmd = &cobra.Command{
	Use:   "munsell",
	Short: "Convert colors to and from Munsell notation",
	Long: `Converts CIE xyY chromaticities (or sRGB hex colors) to Munsell
specifications against a renotation dataset, and back.

The dataset path is taken from --data, the MUNSELL_DATA environment
variable, or the "data" key of a config file.`,
	SilenceUsage: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert <#rrggbb | x y Y> ...",
	Short: "Convert colors to Munsell notation",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conv, err := newConverter()
		if err != nil {
			return err
		}
		for _, in := range parseInputs(args) {
			x, y, Y, err := in.xyY()
			if err != nil {
				return err
			}
			res, err := conv.XyYToMunsell(x, y, Y)
			if err != nil {
				return err
			}
			fmt.Printf("%-16s %s%s\n", in.text, res.Spec, annotate(res))
		}
		return nil
	},
}

var xyyCmd = &cobra.Command{
	Use:   "xyy <spec> ...",
	Short: "Convert Munsell specifications back to xyY",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conv, err := newConverter()
		if err != nil {
			return err
		}
		for _, arg := range args {
			spec, err := munsell.ParseSpec(arg)
			if err != nil {
				return err
			}
			x, y, Y := conv.XyY(spec)
			fmt.Printf("%-16s x=%.5f y=%.5f Y=%.5f\n", spec, x, y, Y)
		}
		return nil
	},
}

func newConverter() (*munsell.Converter, error) {
	path := viper.GetString("data")
	if path == "" {
		return nil, fmt.Errorf("no renotation dataset: set --data or MUNSELL_DATA")
	}
	table, err := renotation.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return munsell.New(table), nil
}

func annotate(res munsell.Result) string {
	var notes []string
	if !res.Converged {
		notes = append(notes, "did not converge")
	}
	if res.GamutLimited {
		notes = append(notes, "gamut limited")
	}
	if len(notes) == 0 {
		return ""
	}
	return "  (" + strings.Join(notes, ", ") + ")"
}

// input is either a hex color or a raw x y Y triple spelled as three args.
type input struct {
	text string
	args []string
}

func parseInputs(args []string) []input {
	var ins []input
	for i := 0; i < len(args); {
		if strings.HasPrefix(args[i], "#") || len(args)-i < 3 {
			ins = append(ins, input{text: args[i], args: args[i : i+1]})
			i++
			continue
		}
		ins = append(ins, input{text: strings.Join(args[i:i+3], " "), args: args[i : i+3]})
		i += 3
	}
	return ins
}

func (in input) xyY() (x, y, Y float64, err error) {
	if len(in.args) == 1 {
		col, err := colorful.Hex(in.args[0])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("bad color %q: %w", in.args[0], err)
		}
		x, y, Y = col.Xyy()
		return x, y, Y, nil
	}
	vals := make([]float64, 3)
	for i, a := range in.args {
		if vals[i], err = strconv.ParseFloat(a, 64); err != nil {
			return 0, 0, 0, fmt.Errorf("bad component %q", a)
		}
	}
	return vals[0], vals[1], vals[2], nil
}

func main() {
	rootCmd.PersistentFlags().String("data", "", "path to the renotation dataset")
	viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	viper.SetEnvPrefix("munsell")
	viper.BindEnv("data")
	viper.SetConfigName("munsell")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // a config file is optional

	rootCmd.AddCommand(convertCmd, xyyCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
