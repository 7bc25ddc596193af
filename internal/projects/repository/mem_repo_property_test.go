package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/portfolio-site/portfolio-backend/internal/projects/domain"
)

// TestFeaturedIsSubsequence verifies ListFeatured is List filtered by Featured.
// Property: ListFeatured() == filter(List(), featured) for any insert sequence
func TestFeaturedIsSubsequence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("featured list is the featured subsequence of list", prop.ForAll(
		func(flags []bool) bool {
			ctx := context.Background()
			repo := NewMemRepo()
			for i, f := range flags {
				if _, err := repo.Create(ctx, newReq(fmt.Sprintf("p%d", i), f)); err != nil {
					return false
				}
			}

			all, err := repo.List(ctx)
			if err != nil {
				return false
			}
			featured, err := repo.ListFeatured(ctx)
			if err != nil {
				return false
			}

			var want []domain.Project
			for _, p := range all {
				if p.Featured {
					want = append(want, p)
				}
			}
			if len(want) != len(featured) {
				return false
			}
			for i := range want {
				if want[i].ID != featured[i].ID {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}

// TestIDsStrictlyIncreasing verifies ids follow insertion order without gaps.
// Property: the i-th created project has id i+1
func TestIDsStrictlyIncreasing(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("ids are 1..n in creation order", prop.ForAll(
		func(n int) bool {
			ctx := context.Background()
			repo := NewMemRepo()
			prev := 0
			for i := 0; i < n; i++ {
				p, err := repo.Create(ctx, newReq(fmt.Sprintf("p%d", i), i%3 == 0))
				if err != nil || p.ID != prev+1 {
					return false
				}
				prev = p.ID
			}
			return repo.Len() == n
		},
		gen.IntRange(0, 64),
	))

	properties.TestingRun(t)
}
