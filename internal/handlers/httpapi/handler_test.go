package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/sheetforge/sheet-api/internal/config"
	entities "github.com/sheetforge/sheet-api/internal/entities/sheet"
	"github.com/sheetforge/sheet-api/internal/errors"
	"github.com/sheetforge/sheet-api/internal/handlers/httpapi"
	sheetsvc "github.com/sheetforge/sheet-api/internal/services/sheet"
	sheetmock "github.com/sheetforge/sheet-api/internal/services/sheet/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *sheetmock.MockService
	mux         *http.ServeMux
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = sheetmock.NewMockService(s.ctrl)

	handler, err := httpapi.NewHandler(&httpapi.Config{SheetService: s.mockService})
	s.Require().NoError(err)

	s.mux = http.NewServeMux()
	handler.Register(s.mux)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decodeRecord(rec *httptest.ResponseRecorder) *entities.CharacterRecord {
	var record entities.CharacterRecord
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &record))
	return &record
}

func testRecord() *entities.CharacterRecord {
	record := entities.NewCharacterRecord("char_1")
	record.Name = "Aria"
	record.Attributes["STR"] = 12
	return record
}

func (s *HandlerTestSuite) TestGetConfig_Success() {
	s.mockService.EXPECT().
		LoadConfiguration(gomock.Any(), gomock.Any()).
		Return(&sheetsvc.LoadConfigurationOutput{
			Configuration: &entities.ResolvedConfiguration{},
		}, nil)

	rec := s.do(http.MethodGet, "/v1/config", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestGetConfig_ValidationErrors() {
	s.mockService.EXPECT().
		LoadConfiguration(gomock.Any(), gomock.Any()).
		Return(&sheetsvc.LoadConfigurationOutput{
			Errors: []config.ValidationError{
				{Document: "attributes", Path: "attributes.0.id", Message: "id is required"},
			},
		}, nil)

	rec := s.do(http.MethodGet, "/v1/config", nil)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var resp httpapi.ConfigResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Errors, 1)
	s.Equal("[attributes at attributes.0.id] id is required", resp.Formatted)
}

func (s *HandlerTestSuite) TestReloadConfig() {
	s.mockService.EXPECT().
		ReloadConfiguration(gomock.Any(), gomock.Any()).
		Return(&sheetsvc.ReloadConfigurationOutput{
			Configuration: &entities.ResolvedConfiguration{},
		}, nil)

	rec := s.do(http.MethodPost, "/v1/config/reload", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestCreateCharacter() {
	s.mockService.EXPECT().
		CreateCharacter(gomock.Any(), &sheetsvc.CreateCharacterInput{Name: "Aria"}).
		Return(&sheetsvc.CreateCharacterOutput{Record: testRecord()}, nil)

	rec := s.do(http.MethodPost, "/v1/characters", map[string]string{"name": "Aria"})
	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("char_1", s.decodeRecord(rec).ID)
}

func (s *HandlerTestSuite) TestCreateCharacter_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/v1/characters", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestCreateCharacter_ConfigNotLoaded() {
	s.mockService.EXPECT().
		CreateCharacter(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("configuration has not been loaded"))

	rec := s.do(http.MethodPost, "/v1/characters", map[string]string{"name": "Aria"})
	s.Equal(http.StatusPreconditionFailed, rec.Code)
}

func (s *HandlerTestSuite) TestGetCharacter() {
	s.mockService.EXPECT().
		GetCharacter(gomock.Any(), &sheetsvc.GetCharacterInput{CharacterID: "char_1"}).
		Return(&sheetsvc.GetCharacterOutput{Record: testRecord()}, nil)

	rec := s.do(http.MethodGet, "/v1/characters/char_1", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Aria", s.decodeRecord(rec).Name)
}

func (s *HandlerTestSuite) TestGetCharacter_NotFound() {
	s.mockService.EXPECT().
		GetCharacter(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFoundf("character %q not found", "nope"))

	rec := s.do(http.MethodGet, "/v1/characters/nope", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	var resp map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("NOT_FOUND", resp["code"])
}

func (s *HandlerTestSuite) TestListCharacters() {
	s.mockService.EXPECT().
		ListCharacters(gomock.Any(), gomock.Any()).
		Return(&sheetsvc.ListCharactersOutput{
			Records: []*entities.CharacterRecord{testRecord()},
		}, nil)

	rec := s.do(http.MethodGet, "/v1/characters", nil)
	s.Equal(http.StatusOK, rec.Code)

	var resp map[string][]*entities.CharacterRecord
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp["characters"], 1)
}

func (s *HandlerTestSuite) TestDeleteCharacter() {
	s.mockService.EXPECT().
		DeleteCharacter(gomock.Any(), &sheetsvc.DeleteCharacterInput{CharacterID: "char_1"}).
		Return(&sheetsvc.DeleteCharacterOutput{}, nil)

	rec := s.do(http.MethodDelete, "/v1/characters/char_1", nil)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestUpdateAttribute() {
	s.mockService.EXPECT().
		UpdateAttribute(gomock.Any(), &sheetsvc.UpdateAttributeInput{
			CharacterID: "char_1",
			AttributeID: "STR",
			Value:       14,
		}).
		Return(&sheetsvc.UpdateAttributeOutput{Record: testRecord()}, nil)

	rec := s.do(http.MethodPut, "/v1/characters/char_1/attributes/STR", map[string]float64{"value": 14})
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestUpdateAttribute_OutOfRange() {
	s.mockService.EXPECT().
		UpdateAttribute(gomock.Any(), gomock.Any()).
		Return(nil, errors.OutOfRange("value 25 is above the maximum"))

	rec := s.do(http.MethodPut, "/v1/characters/char_1/attributes/STR", map[string]float64{"value": 25})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestUpdateCombatStat() {
	s.mockService.EXPECT().
		UpdateCombatStat(gomock.Any(), &sheetsvc.UpdateCombatStatInput{
			CharacterID: "char_1",
			StatID:      "hp",
			Value:       7,
		}).
		Return(&sheetsvc.UpdateCombatStatOutput{Record: testRecord()}, nil)

	rec := s.do(http.MethodPut, "/v1/characters/char_1/combat-stats/hp", map[string]float64{"value": 7})
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestUpdateInfoField() {
	s.mockService.EXPECT().
		UpdateInfoField(gomock.Any(), &sheetsvc.UpdateInfoFieldInput{
			CharacterID: "char_1",
			FieldID:     "char_species",
			Value:       "Elf",
		}).
		Return(&sheetsvc.UpdateInfoFieldOutput{Record: testRecord()}, nil)

	rec := s.do(http.MethodPut, "/v1/characters/char_1/info/char_species", map[string]string{"value": "Elf"})
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestUpdateInventorySlot() {
	s.mockService.EXPECT().
		UpdateInventorySlot(gomock.Any(), &sheetsvc.UpdateInventorySlotInput{
			CharacterID: "char_1",
			TabID:       "backpack",
			SlotIndex:   3,
			ItemName:    "Torch",
		}).
		Return(&sheetsvc.UpdateInventorySlotOutput{Record: testRecord()}, nil)

	rec := s.do(http.MethodPut, "/v1/characters/char_1/inventory/backpack/slots/3", map[string]string{"item": "Torch"})
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestUpdateInventorySlot_BadIndex() {
	rec := s.do(http.MethodPut, "/v1/characters/char_1/inventory/backpack/slots/three", map[string]string{"item": "Torch"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestSetLevel() {
	s.mockService.EXPECT().
		SetLevel(gomock.Any(), &sheetsvc.SetLevelInput{
			CharacterID: "char_1",
			ClassName:   "Fighter",
			Level:       5,
		}).
		Return(&sheetsvc.SetLevelOutput{Record: testRecord()}, nil)

	rec := s.do(http.MethodPut, "/v1/characters/char_1/level", map[string]any{"class": "Fighter", "level": 5})
	s.Equal(http.StatusOK, rec.Code)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
