/*
Package docpost post-processes a tree of generated Markdown documentation.

A run is a fixed sequence over one root directory:

  - remove the "modules" directory and the "README.md" file found directly
    under the root;
  - drop the first two lines of every remaining ".md" file;
  - demote every heading by one level in files that live under a directory
    named "classes".

# Usage

	p := docpost.New(docpost.WithLogger(logger))
	report, err := p.Run(ctx, "docs")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d files processed\n", len(report.Files))

A run is not transactional. The first filesystem error stops it and files
already rewritten stay rewritten.

Use WithDryRun to compute the same Report without touching the tree, and
Preview to see what a single file would become.
*/
package docpost
