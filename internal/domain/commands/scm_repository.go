package commands

import (
	"github.com/rios0rios0/scmbridge/internal/domain/entities"
	"github.com/rios0rios0/scmbridge/internal/domain/repositories"
)

// SCMRepository pairs one provider with its selection state and input box.
// The repository owns the provider: disposing the repository disposes it.
type SCMRepository struct {
	provider repositories.ProviderRepository
	teardown entities.Disposable
	input    *entities.Input
	selected bool

	onDidFocus           *entities.Emitter[struct{}]
	onDidChangeSelection *entities.Emitter[bool]
}

// NewSCMRepository wraps provider. teardown runs first when the repository is
// disposed, before the provider itself is disposed.
func NewSCMRepository(provider repositories.ProviderRepository, teardown entities.Disposable) *SCMRepository {
	return &SCMRepository{
		provider:             provider,
		teardown:             teardown,
		input:                entities.NewInput(),
		onDidFocus:           entities.NewEmitter[struct{}](),
		onDidChangeSelection: entities.NewEmitter[bool](),
	}
}

func (it *SCMRepository) Provider() repositories.ProviderRepository { return it.provider }

func (it *SCMRepository) Input() *entities.Input { return it.input }

func (it *SCMRepository) Selected() bool { return it.selected }

func (it *SCMRepository) OnDidFocus() entities.Event[struct{}] { return it.onDidFocus.Event() }

func (it *SCMRepository) OnDidChangeSelection() entities.Event[bool] {
	return it.onDidChangeSelection.Event()
}

// Focus asks listeners to bring this repository's view to the front.
func (it *SCMRepository) Focus() {
	it.onDidFocus.Fire(struct{}{})
}

// SetSelected stores selected and always notifies, even if nothing changed.
func (it *SCMRepository) SetSelected(selected bool) {
	it.selected = selected
	it.onDidChangeSelection.Fire(selected)
}

// Dispose runs the registration teardown, then disposes the provider.
func (it *SCMRepository) Dispose() {
	if it.teardown != nil {
		it.teardown.Dispose()
	}
	it.provider.Dispose()
}
