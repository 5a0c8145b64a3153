package commands

import (
	"slices"
	"sort"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/scmbridge/internal/domain/entities"
	"github.com/rios0rios0/scmbridge/internal/domain/repositories"
)

// SCM is the interface for the repository registry.
type SCM interface {
	RegisterSCMProvider(provider repositories.ProviderRepository) *SCMRepository
	Repositories() []*SCMRepository
	SelectedRepositories() []*SCMRepository
	ProviderIDs() []string
	OnDidAddRepository() entities.Event[*SCMRepository]
	OnDidRemoveRepository() entities.Event[*SCMRepository]
	OnDidChangeSelectedRepositories() entities.Event[[]*SCMRepository]
}

// SCMService keeps the ordered list of registered repositories and the
// subset of them that is selected. It is not safe for concurrent use; all
// calls and notifications happen on the caller's goroutine.
type SCMService struct {
	providerIDs          map[string]int
	repositories         []*SCMRepository
	selectedRepositories []*SCMRepository

	onDidAddRepository              *entities.Emitter[*SCMRepository]
	onDidRemoveRepository           *entities.Emitter[*SCMRepository]
	onDidChangeSelectedRepositories *entities.Emitter[[]*SCMRepository]
}

// NewSCMService creates an empty registry.
func NewSCMService() *SCMService {
	return &SCMService{
		providerIDs:                     make(map[string]int),
		onDidAddRepository:              entities.NewEmitter[*SCMRepository](),
		onDidRemoveRepository:           entities.NewEmitter[*SCMRepository](),
		onDidChangeSelectedRepositories: entities.NewEmitter[[]*SCMRepository](),
	}
}

func (it *SCMService) OnDidAddRepository() entities.Event[*SCMRepository] {
	return it.onDidAddRepository.Event()
}

func (it *SCMService) OnDidRemoveRepository() entities.Event[*SCMRepository] {
	return it.onDidRemoveRepository.Event()
}

func (it *SCMService) OnDidChangeSelectedRepositories() entities.Event[[]*SCMRepository] {
	return it.onDidChangeSelectedRepositories.Event()
}

// Repositories returns the registered repositories in registration order.
// The slice is a copy.
func (it *SCMService) Repositories() []*SCMRepository {
	return slices.Clone(it.repositories)
}

// SelectedRepositories returns a copy of the current selection.
func (it *SCMService) SelectedRepositories() []*SCMRepository {
	return slices.Clone(it.selectedRepositories)
}

// ProviderIDs returns the ids of the registered providers, sorted. The ids
// are tracked only; registering a second provider with the same id is allowed.
func (it *SCMService) ProviderIDs() []string {
	ids := make([]string, 0, len(it.providerIDs))
	for id := range it.providerIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RegisterSCMProvider wraps provider in a repository and adds it to the
// registry. The first repository in an empty registry is selected. Disposing
// the returned repository removes it again.
func (it *SCMService) RegisterSCMProvider(provider repositories.ProviderRepository) *SCMRepository {
	var (
		repository *SCMRepository
		selection  entities.Disposable
	)

	teardown := entities.DisposableFunc(func() {
		index := slices.Index(it.repositories, repository)
		if index < 0 {
			return
		}

		selection.Dispose()
		it.forgetProviderID(provider.ID())
		it.repositories = entities.Splice[*SCMRepository]{Start: index, DeleteCount: 1}.Apply(it.repositories)
		logger.Debugf("Removed SCM repository for provider %q", provider.ID())

		it.onDidRemoveRepository.Fire(repository)
		it.onDidChangeSelection()
	})

	repository = NewSCMRepository(provider, teardown)
	selection = repository.OnDidChangeSelection()(func(bool) {
		it.onDidChangeSelection()
	})

	it.providerIDs[provider.ID()]++
	it.repositories = append(it.repositories, repository)
	logger.Debugf("Registered SCM provider %q (%s)", provider.ID(), provider.Label())

	if len(it.repositories) == 1 {
		repository.SetSelected(true)
	}

	it.onDidAddRepository.Fire(repository)
	return repository
}

// forgetProviderID drops one registration of id from the tracked set.
func (it *SCMService) forgetProviderID(id string) {
	if it.providerIDs[id] <= 1 {
		delete(it.providerIDs, id)
		return
	}
	it.providerIDs[id]--
}

func (it *SCMService) onDidChangeSelection() {
	selected := make([]*SCMRepository, 0, len(it.repositories))
	for _, repository := range it.repositories {
		if repository.Selected() {
			selected = append(selected, repository)
		}
	}

	if entities.EqualSlices(it.selectedRepositories, selected, nil) {
		return
	}

	it.selectedRepositories = selected
	it.onDidChangeSelectedRepositories.Fire(it.SelectedRepositories())
}
