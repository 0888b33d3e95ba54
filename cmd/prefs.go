package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/abhisek/cryptogram/internal/prefs"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Read and write player preferences",
}

var prefsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one preference, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		w := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, key := range prefs.Keys() {
				printPref(w, env.prefs, key)
			}
			stored, err := env.kv.Keys()
			if err != nil {
				return fmt.Errorf("list prefs: %w", err)
			}
			for _, key := range lo.Without(stored, prefs.Keys()...) {
				warn(cmd, "unrecognized preference %q in prefs store", key)
			}
			return nil
		}
		if !lo.Contains(prefs.Keys(), args[0]) {
			return fmt.Errorf("unknown preference %q (valid: %s)", args[0], strings.Join(prefs.Keys(), ", "))
		}
		printPref(w, env.prefs, args[0])
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a preference",
	Long: `Set a preference. Integer keys take a number, flag keys take true or false,
and puzzle_progress takes a comma-separated list (empty clears it).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		if err := setPref(env.prefs, args[0], args[1]); err != nil {
			return err
		}
		printPref(cmd.OutOrStdout(), env.prefs, args[0])
		return nil
	},
}

func printPref(w io.Writer, p *prefs.Prefs, key string) {
	var v any
	switch key {
	case prefs.KeyCurrentID:
		v = p.CurrentID()
	case prefs.KeyProgress:
		v = strings.Join(p.Progress(), ",")
	case prefs.KeyRandomize:
		v = p.Randomize()
	case prefs.KeyOnboarding:
		v = p.Onboarding()
	case prefs.KeyShowHints:
		v = p.ShowHints()
	case prefs.KeyStartedInAirplaneMode:
		v = p.StartedInAirplaneMode()
	case prefs.KeyUnlockedFlightMode:
		v = p.UnlockedFlightMode()
	default:
		return
	}
	fmt.Fprintf(w, "%s = %v\n", key, v)
}

func setPref(p *prefs.Prefs, key, value string) error {
	switch key {
	case prefs.KeyCurrentID, prefs.KeyOnboarding:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects an integer, got %q", key, value)
		}
		if key == prefs.KeyCurrentID {
			return p.SetCurrentID(n)
		}
		return p.SetOnboarding(n)
	case prefs.KeyProgress:
		if value == "" {
			return p.SetProgress(nil)
		}
		return p.SetProgress(strings.Split(value, ","))
	case prefs.KeyRandomize, prefs.KeyShowHints, prefs.KeyStartedInAirplaneMode, prefs.KeyUnlockedFlightMode:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		switch key {
		case prefs.KeyRandomize:
			return p.SetRandomize(b)
		case prefs.KeyShowHints:
			return p.SetShowHints(b)
		case prefs.KeyStartedInAirplaneMode:
			return p.SetStartedInAirplaneMode(b)
		default:
			return p.SetUnlockedFlightMode(b)
		}
	}
	return fmt.Errorf("unknown preference %q (valid: %s)", key, strings.Join(prefs.Keys(), ", "))
}

func init() {
	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCmd)
}
