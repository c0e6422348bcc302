// Package paths resolves the paths declared by program documents.
//
// Resolution has two steps:
//
//   - Expansion substitutes environment variables ($VAR, ${VAR},
//     ${VAR:-default}) and a leading home-directory shorthand (~ or ~/).
//     A reference to an unset variable without a default is an
//     ExpandError.
//   - Probing checks whether the expanded path exists. The probe never
//     fails: permission and I/O errors yield types.Undetermined, which
//     counts as absent for filtering.
//
// # Usage
//
//	r := paths.NewResolver(filesystem.NewOS())
//	resolved, err := r.Resolve("$XDG_CONFIG_HOME/git/config")
//	if err != nil {
//	    // *paths.ExpandError, skip the entry
//	}
//	if resolved.Exists() {
//	    // ...
//	}
package paths
