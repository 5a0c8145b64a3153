package repositories

import (
	"context"

	"github.com/rios0rios0/scmbridge/internal/domain/entities"
)

// Sequence is an ordered collection that announces its edits as splices.
type Sequence[T any] interface {
	Elements() []T
	OnDidSplice() entities.Event[entities.Splice[T]]
}

// Resource is one changed file inside a resource group.
type Resource interface {
	ResourceGroup() ResourceGroup
	SourceURI() string
	Decorations() entities.ResourceDecorations
	Open(ctx context.Context) error
}

// ResourceGroup is a labelled list of resources owned by a provider, such as
// "Staged changes" or "Merge conflicts".
type ResourceGroup interface {
	Sequence[Resource]

	Provider() ProviderRepository
	Label() string
	ID() string
	HideWhenEmpty() bool
	OnDidChange() entities.Event[struct{}]
}
