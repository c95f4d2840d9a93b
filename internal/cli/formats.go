package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/davispeixoto/object-playground/pkg/fixture"
)

// knownExtensions is the candidate list probed against each loader to show
// which file extensions it claims.
var knownExtensions = []string{".toml", ".yaml", ".yml", ".json"}

// newFormatsCmd creates the formats command listing supported model formats.
func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported model file formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, l := range fixture.Loaders() {
				var exts []string
				for _, ext := range knownExtensions {
					if l.Supports("model" + ext) {
						exts = append(exts, ext)
					}
				}
				printKeyValue(l.Format(), strings.Join(exts, ", "))
			}
		},
	}
}
