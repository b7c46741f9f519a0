// Package files provides file system operations for the ranking tools.
//
// Manager resolves relative paths against the project layout in
// config.Paths ("assets/...", "data/...", "logs/...") and offers the
// small set of operations the tools need: existence checks, directory
// creation, copy, move and delete, and WriteFileAtomic, which writes
// into a temporary sibling and renames it over the target so a failed
// run never leaves a truncated file behind.
//
// Example usage:
//
//	manager := files.NewManager(paths)
//	err := manager.WriteFileAtomic("assets/out.csv", func(w io.Writer) error {
//	    _, err := io.WriteString(w, "Ranking,Score\r\n")
//	    return err
//	})
package files
