// Package flagx narrows command-line arguments down to the flags a single
// component understands.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps only the arguments that belong to one of the named flags.
// Both services parse their command line twice: once for the JSON config
// path and once for the regular flags, so each pass must see only its own
// flags. Values may follow the flag ("-c app.json") or be attached with '='
// ("-config=app.json"); a following argument that starts with '-' is never
// taken as a value.
func FilterArgs(args []string, names []string) []string {
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}

	kept := []string{}
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, attached := strings.Cut(arg, "="); attached && strings.HasPrefix(arg, "-") {
			if known[name] {
				kept = append(kept, arg)
			}
			continue
		}

		if !known[arg] {
			continue
		}
		kept = append(kept, arg)

		if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "-") {
			kept = append(kept, args[next])
			i = next
		}
	}

	return kept
}

// ConfigFilePath extracts the config file path given via -c or -config from
// args (usually os.Args[1:]). Other arguments are ignored, so each component
// can parse its own flags without interference. When the flag is repeated the
// last value wins; when it is absent an empty string is returned.
func ConfigFilePath(args []string) string {
	var config string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return config
}
