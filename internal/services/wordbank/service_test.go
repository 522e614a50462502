package wordbank

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/imposter/internal/model"
	"github.com/mcoot/imposter/internal/storage/memory"
	"github.com/mcoot/imposter/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestIsNotLoadedByDefault() {
	s.False(s.service.IsLoaded())

	_, err := s.service.Bank()
	s.ErrorIs(err, model.ErrWordBankNotLoaded)

	_, err = s.service.Categories()
	s.ErrorIs(err, model.ErrWordBankNotLoaded)
}

func (s *ServiceSuite) TestDefaultBankIsValid() {
	bank := DefaultBank()
	s.Require().NoError(bank.Validate())
	s.Len(bank.Categories, 3)
	s.Equal("+18", bank.Category("adult").Label)
}

func (s *ServiceSuite) TestLoadBank() {
	err := s.service.LoadBank(DefaultBank())
	s.Require().NoError(err)
	s.True(s.service.IsLoaded())
}

func (s *ServiceSuite) TestLoadBankRejectsInvalid() {
	err := s.service.LoadBank(&model.WordBank{Categories: []model.Category{
		{ID: "food", Words: []string{"Pizza"}},
		{ID: "food", Words: []string{"Sushi"}},
	}})
	s.ErrorIs(err, model.ErrInvalidWordBank)
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestCategories() {
	_ = s.service.LoadBank(DefaultBank())

	infos, err := s.service.Categories()
	s.Require().NoError(err)
	s.Require().Len(infos, 4)

	s.Equal(model.CategoryID("clothes"), infos[0].ID)
	s.Equal(15, infos[0].WordCount)
	s.Equal(model.CategoryID("food"), infos[1].ID)
	s.Equal(16, infos[1].WordCount)
	s.Equal(model.CategoryID("adult"), infos[2].ID)
	s.Equal(11, infos[2].WordCount)

	s.Equal(model.CategoryAll, infos[3].ID)
	s.Equal("Cocktail", infos[3].Label)
	s.Equal(42, infos[3].WordCount)
}

func (s *ServiceSuite) TestCategoryInfo() {
	_ = s.service.LoadBank(DefaultBank())

	info, err := s.service.CategoryInfo("food")
	s.Require().NoError(err)
	s.Equal("Food", info.Label)

	info, err = s.service.CategoryInfo(model.CategoryAll)
	s.Require().NoError(err)
	s.Equal(model.AllCategoriesLabel, info.Label)

	_, err = s.service.CategoryInfo("animals")
	s.ErrorIs(err, model.ErrUnknownCategory)
}

func (s *ServiceSuite) TestLoadFromStorage() {
	bank := &model.WordBank{Categories: []model.Category{
		{ID: "animals", Label: "Animals", Words: []string{"Otter"}},
	}}
	s.Require().NoError(s.storage.SaveWordBank(s.ctx, bank))

	err := s.service.LoadFromStorage(s.ctx)
	s.Require().NoError(err)

	loaded, err := s.service.Bank()
	s.Require().NoError(err)
	s.Equal(bank, loaded)
}

func (s *ServiceSuite) TestLoadFromStorageWhenEmpty() {
	err := s.service.LoadFromStorage(s.ctx)
	s.ErrorIs(err, model.ErrWordBankNotLoaded)
}

func (s *ServiceSuite) TestLoadFromYAMLFile() {
	err := s.service.LoadFromFile(s.ctx, "testdata/party.yaml")
	s.Require().NoError(err)

	bank, err := s.service.Bank()
	s.Require().NoError(err)
	s.Require().Len(bank.Categories, 2)
	s.Equal(model.CategoryID("animals"), bank.Categories[0].ID)
	s.Equal("Animals", bank.Categories[0].Label)
	s.Equal([]string{"Otter", "Giraffe", "Penguin"}, bank.Categories[0].Words)
	s.Equal([]string{"Airport", "Library"}, bank.Categories[1].Words)

	// The file is saved to storage for future use
	stored, err := s.storage.GetWordBank(s.ctx)
	s.Require().NoError(err)
	s.Equal(bank, stored)
}

func (s *ServiceSuite) TestLoadFromJSONFile() {
	err := s.service.LoadFromFile(s.ctx, "testdata/party.json")
	s.Require().NoError(err)

	info, err := s.service.CategoryInfo("sports")
	s.Require().NoError(err)
	s.Equal(2, info.WordCount)
}

func (s *ServiceSuite) TestLoadFromTOMLFile() {
	err := s.service.LoadFromFile(s.ctx, "testdata/party.toml")
	s.Require().NoError(err)

	info, err := s.service.CategoryInfo("music")
	s.Require().NoError(err)
	s.Equal("Music", info.Label)
	s.Equal(3, info.WordCount)
}

func (s *ServiceSuite) TestLoadFromFileRejectsInvalidBank() {
	err := s.service.LoadFromFile(s.ctx, "testdata/invalid.yaml")
	s.ErrorIs(err, model.ErrInvalidWordBank)

	err = s.service.LoadFromFile(s.ctx, "testdata/reserved.yaml")
	s.ErrorIs(err, model.ErrInvalidWordBank)

	s.False(s.service.IsLoaded())
	_, err = s.storage.GetWordBank(s.ctx)
	s.ErrorIs(err, model.ErrWordBankNotLoaded)
}

func (s *ServiceSuite) TestLoadFromMissingFile() {
	err := s.service.LoadFromFile(s.ctx, "testdata/missing.yaml")
	s.Error(err)
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestInitFallsBackToDefaults() {
	err := s.service.Init(s.ctx, "")
	s.Require().NoError(err)

	bank, err := s.service.Bank()
	s.Require().NoError(err)
	s.Equal(DefaultBank(), bank)

	stored, err := s.storage.GetWordBank(s.ctx)
	s.Require().NoError(err)
	s.Equal(DefaultBank(), stored)
}

func (s *ServiceSuite) TestInitPrefersStorage() {
	bank := &model.WordBank{Categories: []model.Category{
		{ID: "animals", Label: "Animals", Words: []string{"Otter"}},
	}}
	s.Require().NoError(s.storage.SaveWordBank(s.ctx, bank))

	s.Require().NoError(s.service.Init(s.ctx, ""))

	loaded, _ := s.service.Bank()
	s.Equal(bank, loaded)
}

func (s *ServiceSuite) TestInitPrefersFile() {
	s.Require().NoError(s.storage.SaveWordBank(s.ctx, DefaultBank()))

	s.Require().NoError(s.service.Init(s.ctx, "testdata/party.yaml"))

	_, err := s.service.CategoryInfo("food")
	s.ErrorIs(err, model.ErrUnknownCategory)
}
