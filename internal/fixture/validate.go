package fixture

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentValidations bounds the number of fixture files read at once.
const maxConcurrentValidations = 8

// ValidationResult is the outcome of validating one fixture file.
type ValidationResult struct {
	Path  string
	Name  string
	Pages int
	Err   error
}

// ValidateFiles loads every path concurrently and reports a result per
// path, in input order. The returned error is only set when ctx is done.
func ValidateFiles(ctx context.Context, paths []string) ([]ValidationResult, error) {
	results := make([]ValidationResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentValidations)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res := ValidationResult{Path: path}
			f, err := ReadFile(path)
			if err == nil {
				_, err = NewSource(f)
			}
			if err != nil {
				res.Err = err
			} else {
				res.Name = f.Name
				res.Pages = len(f.Pages)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
