package config_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/sheetforge/sheet-api/internal/config"
	"github.com/sheetforge/sheet-api/internal/documents"
	documentsmock "github.com/sheetforge/sheet-api/internal/documents/mock"
	"github.com/sheetforge/sheet-api/internal/entities/sheet"
	"github.com/sheetforge/sheet-api/internal/errors"
)

// validDocuments returns a consistent set of all six documents
func validDocuments() map[string]string {
	return map[string]string{
		documents.NameEnums: `[
			{"id":"species","label":"Species","values":["Human","Elf","Dwarf"]},
			{"id":"classes","label":"Classes","values":[{"name":"Fighter","data":{"hitDie":10}},"Wizard"]},
			{"id":"items","label":"Items","values":["Rope","Torch","Rations"]}
		]`,
		documents.NameAttributes: `{"title":"Attributes","attributes":[
			{"id":"STR","label":"Strength","description":"","schema":{"valueType":"integer","minimum":1,"maximum":20,"default":10}},
			{"id":"DEX","label":"Dexterity","description":"","schema":{"valueType":"integer","minimum":1,"maximum":20,"default":10}}
		]}`,
		documents.NameCombatStats: `{"title":"Combat","stats":[
			[
				{"id":"hp","label":"HP","description":"","schema":{"valueType":"integer","minimum":0,"maximum":"dynamic","default":10}},
				{"id":"hp_max","label":"Max HP","description":"","schema":{"valueType":"integer","minimum":1,"maximum":999,"default":10}}
			],
			{"id":"armor","label":"Armor","description":"","schema":{"valueType":"integer","minimum":0,"maximum":30}}
		]}`,
		documents.NameCharacterInfo: `{"title":"Info","fields":[
			{"kind":"text","id":"char_name","label":"Name","placeholder":"Unnamed"},
			{"kind":"enum","id":"char_species","label":"Species","enumRef":"species"}
		]}`,
		documents.NameInventory: `{"title":"Inventory","tabs":[
			{"id":"backpack","label":"Backpack","enumRef":"items","slotFormula":"STR * 2","emptyMessage":"Empty"}
		]}`,
		documents.NameLevelClass: `{"title":"Class & Level","enumRef":"classes","levels":{"min":1,"default":1,"max":20},"classLabel":"Class","levelLabel":"Level"}`,
	}
}

type ManagerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockFetcher *documentsmock.MockFetcher
	manager     *config.Manager
	ctx         context.Context
}

func (s *ManagerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockFetcher = documentsmock.NewMockFetcher(s.ctrl)
	s.ctx = context.Background()

	manager, err := config.NewManager(&config.Config{Fetcher: s.mockFetcher})
	s.Require().NoError(err)
	s.manager = manager
}

func (s *ManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ManagerTestSuite) expectDocuments(docs map[string]string) {
	for name, body := range docs {
		s.mockFetcher.EXPECT().
			Fetch(gomock.Any(), name).
			Return([]byte(body), nil).
			AnyTimes()
	}
}

func (s *ManagerTestSuite) TestLoadAll_Success() {
	s.expectDocuments(validDocuments())

	resolved, errs := s.manager.LoadAll(s.ctx)
	s.Empty(errs)
	s.Require().NotNil(resolved)
	s.Equal(config.StateLoaded, s.manager.State())

	e, ok := resolved.Enum("species")
	s.True(ok)
	s.Equal("Human", e.FirstValue())

	s.Len(resolved.CombatStatDefinitions(), 3, "pairs flatten to two definitions")
}

func (s *ManagerTestSuite) TestLoadAll_CachesSuccess() {
	docs := validDocuments()
	for name, body := range docs {
		// Exactly one fetch per document across both calls
		s.mockFetcher.EXPECT().
			Fetch(gomock.Any(), name).
			Return([]byte(body), nil).
			Times(1)
	}

	first, errs := s.manager.LoadAll(s.ctx)
	s.Empty(errs)
	second, errs := s.manager.LoadAll(s.ctx)
	s.Empty(errs)
	s.Same(first, second)
}

func (s *ManagerTestSuite) TestLoadAll_ConcurrentCallersShareOneLoad() {
	docs := validDocuments()
	for name, body := range docs {
		s.mockFetcher.EXPECT().
			Fetch(gomock.Any(), name).
			Return([]byte(body), nil).
			Times(1)
	}

	const callers = 8
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolved, errs := s.manager.LoadAll(s.ctx)
			s.Empty(errs)
			s.NotNil(resolved)
		}()
	}
	wg.Wait()
}

func (s *ManagerTestSuite) TestLoadAll_AccumulatesAllErrors() {
	docs := validDocuments()
	docs[documents.NameAttributes] = `{"title":"","attributes":[]}`
	docs[documents.NameLevelClass] = `{"title":"Class","enumRef":"nope","levels":{"min":1,"default":1,"max":20}}`
	s.expectDocuments(docs)

	resolved, errs := s.manager.LoadAll(s.ctx)
	s.Nil(resolved)
	s.Equal(config.StateFailed, s.manager.State())

	formatted := config.FormatErrors(errs)
	s.Contains(formatted, "[attributes at title]")
	s.Contains(formatted, "[attributes at attributes]")
	s.Contains(formatted, `referenced enum 'nope' not found`)
}

func (s *ManagerTestSuite) TestLoadAll_FetchFailureIsDocumentLevel() {
	docs := validDocuments()
	delete(docs, documents.NameInventory)
	s.expectDocuments(docs)
	s.mockFetcher.EXPECT().
		Fetch(gomock.Any(), documents.NameInventory).
		Return(nil, errors.NotFoundf("document %q not found", documents.NameInventory)).
		AnyTimes()

	resolved, errs := s.manager.LoadAll(s.ctx)
	s.Nil(resolved)

	found := false
	for _, e := range errs {
		if e.Document == documents.NameInventory && e.Path == "" {
			found = true
			s.Contains(e.Message, "not found")
		}
	}
	s.True(found, "fetch failure reported with empty path")
}

func (s *ManagerTestSuite) TestLoadAll_FailureIsNotCached() {
	bad := validDocuments()
	bad[documents.NameEnums] = `[]`

	gomock.InOrder(
		s.mockFetcher.EXPECT().Fetch(gomock.Any(), documents.NameEnums).Return([]byte(bad[documents.NameEnums]), nil),
		s.mockFetcher.EXPECT().Fetch(gomock.Any(), documents.NameEnums).Return([]byte(validDocuments()[documents.NameEnums]), nil),
	)
	good := validDocuments()
	for name, body := range good {
		if name == documents.NameEnums {
			continue
		}
		s.mockFetcher.EXPECT().
			Fetch(gomock.Any(), name).
			Return([]byte(body), nil).
			AnyTimes()
	}

	resolved, errs := s.manager.LoadAll(s.ctx)
	s.Nil(resolved)
	s.NotEmpty(errs)

	resolved, errs = s.manager.LoadAll(s.ctx)
	s.Empty(errs)
	s.NotNil(resolved)
}

func (s *ManagerTestSuite) TestCrossReference_MissingEnum() {
	docs := validDocuments()
	docs[documents.NameCharacterInfo] = `{"title":"Info","fields":[
		{"kind":"enum","id":"char_species","label":"Species","enumRef":"speceis"}
	]}`
	s.expectDocuments(docs)

	resolved, errs := s.manager.LoadAll(s.ctx)
	s.Nil(resolved)
	s.Require().Len(errs, 1)
	s.Equal(documents.NameCharacterInfo, errs[0].Document)
	s.Equal("fields.0.enumRef", errs[0].Path)
	s.Equal(`referenced enum 'speceis' not found`, errs[0].Message)
}

func (s *ManagerTestSuite) TestGlobalUniqueness_CollisionNamesBothLocations() {
	// The species enumeration and an info field both claim the ID "species"
	docs := validDocuments()
	docs[documents.NameCharacterInfo] = `{"title":"Info","fields":[
		{"kind":"enum","id":"species","label":"Species","enumRef":"species"}
	]}`
	s.expectDocuments(docs)

	resolved, errs := s.manager.LoadAll(s.ctx)
	s.Nil(resolved)
	s.Require().Len(errs, 1)
	s.Equal(documents.NameCharacterInfo, errs[0].Document)
	s.Equal("fields.0.id", errs[0].Path)
	s.Contains(errs[0].Message, `duplicate ID "species"`)
	s.Contains(errs[0].Message, "enums at enums.0.id")
}

func (s *ManagerTestSuite) TestGlobalUniqueness_SkipsInvalidDocuments() {
	// attributes fails its own validation; its IDs must not produce
	// collision errors against combat stats
	docs := validDocuments()
	docs[documents.NameAttributes] = `{"title":"","attributes":[
		{"id":"hp","label":"HP","description":"","schema":{"valueType":"integer"}}
	]}`
	s.expectDocuments(docs)

	_, errs := s.manager.LoadAll(s.ctx)
	for _, e := range errs {
		s.NotContains(e.Message, "duplicate ID")
	}
}

func (s *ManagerTestSuite) TestEndToEnd_RenameResolvesCollision() {
	// First generation: collision on "species"
	collided := validDocuments()
	collided[documents.NameCharacterInfo] = `{"title":"Info","fields":[
		{"kind":"enum","id":"species","label":"Species","enumRef":"species"}
	]}`
	s.expectDocuments(collided)

	resolved, errs := s.manager.LoadAll(s.ctx)
	s.Nil(resolved)
	s.Require().Len(errs, 1)
	s.Contains(errs[0].Message, "enums")
	s.Equal(documents.NameCharacterInfo, errs[0].Document)

	// Rename the field's ID and reload
	s.manager.Reset()
	s.ctrl.Finish()
	s.ctrl = gomock.NewController(s.T())
	s.mockFetcher = documentsmock.NewMockFetcher(s.ctrl)
	manager, err := config.NewManager(&config.Config{Fetcher: s.mockFetcher})
	s.Require().NoError(err)
	s.manager = manager

	fixed := validDocuments()
	fixed[documents.NameCharacterInfo] = `{"title":"Info","fields":[
		{"kind":"enum","id":"character_species","label":"Species","enumRef":"species"}
	]}`
	s.expectDocuments(fixed)

	resolved, errs = s.manager.LoadAll(s.ctx)
	s.Empty(errs)
	s.Require().NotNil(resolved)

	e, getErr := s.manager.GetEnum("species")
	s.Require().NoError(getErr)
	s.Equal([]string{"Human", "Elf", "Dwarf"}, enumNames(e.Values))
}

func (s *ManagerTestSuite) TestGetConfiguration_BeforeLoad() {
	_, err := s.manager.GetConfiguration()
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.manager.GetEnum("species")
	s.True(errors.IsFailedPrecondition(err))
}

func (s *ManagerTestSuite) TestGetEnum_NotFound() {
	s.expectDocuments(validDocuments())
	_, errs := s.manager.LoadAll(s.ctx)
	s.Empty(errs)

	_, err := s.manager.GetEnum("nonexistent")
	s.True(errors.IsNotFound(err))
}

func (s *ManagerTestSuite) TestReset_ForcesRefetch() {
	docs := validDocuments()
	for name, body := range docs {
		s.mockFetcher.EXPECT().
			Fetch(gomock.Any(), name).
			Return([]byte(body), nil).
			Times(2)
	}

	_, errs := s.manager.LoadAll(s.ctx)
	s.Empty(errs)

	s.manager.Reset()
	s.Equal(config.StateUnloaded, s.manager.State())

	_, errs = s.manager.LoadAll(s.ctx)
	s.Empty(errs)
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func enumNames(values []sheet.EnumValue) []string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.Name
	}
	return names
}
