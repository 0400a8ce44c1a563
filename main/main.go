package main

import (
	"fmt"
	"os"

	"github.com/monomere/swizgen"
	"github.com/spf13/cobra"
)

// The vec3 swizzles are instantiated separately, so only rank-3
// swizzles are generated here, over the vec4 components, minus the
// ones vec3 already covers.
const swizzleRank = 3

var rootCmd = &cobra.Command{
	Use:   "swizgen",
	Short: "Generate the vec4 swizzle accessor macro invocations",
	Long: `Swizgen prints one impl_swizzle_for_vec! invocation per rank-3 swizzle
of the vec4 components (x, y, z, w), skipping the swizzles already
instantiated for vec3. Redirect stdout into the vector library's
generated source.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		emitter := swizgen.NewEmitter(
			swizgen.Vec4Components,
			swizgen.Vec3Components,
			swizzleRank,
			cmd.OutOrStdout(),
		)
		return emitter.Run()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
