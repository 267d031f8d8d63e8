package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/model"
)

type fakeLister struct {
	keys  []string
	err   error
	calls int
}

func (f *fakeLister) ListAudioObjects(_ context.Context, _ string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.keys, nil
}

type fakePipeline struct {
	result     model.Result
	err        error
	calls      int
	lastKey    string
	lastChoice model.LanguageChoice
}

func (f *fakePipeline) Run(_ context.Context, key string, choice model.LanguageChoice) (model.Result, error) {
	f.calls++
	f.lastKey = key
	f.lastChoice = choice
	if f.err != nil {
		return model.Result{}, f.err
	}
	return f.result, nil
}

type APISuite struct {
	suite.Suite
	lister   *fakeLister
	pipeline *fakePipeline
	store    *SessionStore
	handler  http.Handler
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.lister = &fakeLister{keys: []string{"a.wav", "c.mp3"}}
	translation := &model.Translation{Language: "French", Text: "Hello"}
	s.pipeline = &fakePipeline{
		result: model.Result{
			Key:         "c.mp3",
			Transcript:  "Bonjour",
			Translation: translation,
			Downloads:   model.TranscriptDownloads("c.mp3", "Bonjour", translation),
		},
	}
	s.store = NewSessionStore()
	s.handler = NewRouter(NewAPI(s.lister, s.pipeline, "recordings", s.store))
}

func (s *APISuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, req)
	return recorder
}

func (s *APISuite) TestHealthz() {
	recorder := s.do(http.MethodGet, "/healthz", "")
	s.Assert().Equal(http.StatusOK, recorder.Code)
}

func (s *APISuite) TestListAudioFilesHitsStoreEveryCall() {
	first := s.do(http.MethodGet, "/api/v1/audio-files", "")
	s.Require().Equal(http.StatusOK, first.Code)

	var body struct {
		Files []string `json:"files"`
	}
	s.Require().NoError(json.Unmarshal(first.Body.Bytes(), &body))
	s.Assert().Equal([]string{"a.wav", "c.mp3"}, body.Files)

	s.do(http.MethodGet, "/api/v1/audio-files", "")
	s.Assert().Equal(2, s.lister.calls)
}

func (s *APISuite) TestListAudioFilesSurfacesStoreError() {
	s.lister.err = errors.New("AccessDenied")

	recorder := s.do(http.MethodGet, "/api/v1/audio-files", "")
	s.Assert().Equal(http.StatusBadGateway, recorder.Code)
	s.Assert().Contains(recorder.Body.String(), "An error occurred: AccessDenied")
}

func (s *APISuite) TestListLanguagesReturnsFixedSet() {
	recorder := s.do(http.MethodGet, "/api/v1/languages", "")
	s.Require().Equal(http.StatusOK, recorder.Code)

	var body struct {
		Languages []string `json:"languages"`
	}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	s.Require().Len(body.Languages, 7)
	s.Assert().Equal(model.NoTranslationLabel, body.Languages[0])
	s.Assert().Contains(body.Languages, "French")
}

func (s *APISuite) TestCreateTranscriptionWithTranslation() {
	recorder := s.do(http.MethodPost, "/api/v1/transcriptions", `{"key":"c.mp3","language":"French"}`)
	s.Require().Equal(http.StatusOK, recorder.Code)

	s.Assert().Equal(1, s.pipeline.calls)
	s.Assert().Equal("c.mp3", s.pipeline.lastKey)
	s.Assert().Equal("French", s.pipeline.lastChoice.Target)

	var body struct {
		Transcript  string             `json:"transcript"`
		Translation *model.Translation `json:"translation"`
		Downloads   []string           `json:"downloads"`
	}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	s.Assert().Equal("Bonjour", body.Transcript)
	s.Require().NotNil(body.Translation)
	s.Assert().Equal("Hello", body.Translation.Text)
	s.Assert().Equal([]string{"c.mp3_transcript_original.txt", "c.mp3_transcript_french.txt"}, body.Downloads)

	_, ok := s.store.Current()
	s.Assert().True(ok)
}

func (s *APISuite) TestCreateTranscriptionDefaultsToNoTranslation() {
	s.pipeline.result = model.Result{
		Key:        "a.wav",
		Transcript: "hi",
		Downloads:  model.TranscriptDownloads("a.wav", "hi", nil),
	}

	recorder := s.do(http.MethodPost, "/api/v1/transcriptions", `{"key":"a.wav"}`)
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.Assert().False(s.pipeline.lastChoice.Translate())
}

func (s *APISuite) TestCreateTranscriptionValidation() {
	recorder := s.do(http.MethodPost, "/api/v1/transcriptions", `{"language":"French"}`)
	s.Assert().Equal(http.StatusBadRequest, recorder.Code)
	s.Assert().Contains(recorder.Body.String(), "key is required")

	recorder = s.do(http.MethodPost, "/api/v1/transcriptions", `{"key":"a.wav","language":"Klingon"}`)
	s.Assert().Equal(http.StatusBadRequest, recorder.Code)
	s.Assert().Equal(0, s.pipeline.calls)
}

func (s *APISuite) TestCreateTranscriptionPipelineErrorIsSingleMessage() {
	s.pipeline.err = errors.New("NoSuchKey: the specified key does not exist")

	recorder := s.do(http.MethodPost, "/api/v1/transcriptions", `{"key":"c.mp3","language":"French"}`)
	s.Assert().Equal(http.StatusBadGateway, recorder.Code)
	s.Assert().Contains(recorder.Body.String(), "An error occurred: NoSuchKey")

	_, ok := s.store.Current()
	s.Assert().False(ok)
}

func (s *APISuite) TestDownloadReturnsByteIdenticalContent() {
	s.do(http.MethodPost, "/api/v1/transcriptions", `{"key":"c.mp3","language":"French"}`)

	recorder := s.do(http.MethodGet, "/api/v1/transcriptions/current/downloads/c.mp3_transcript_original.txt", "")
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.Assert().Equal("Bonjour", recorder.Body.String())
	s.Assert().Contains(recorder.Header().Get("Content-Disposition"), "c.mp3_transcript_original.txt")
	s.Assert().Contains(recorder.Header().Get("Content-Type"), "text/plain")

	recorder = s.do(http.MethodGet, "/api/v1/transcriptions/current/downloads/c.mp3_transcript_french.txt", "")
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.Assert().Equal("Hello", recorder.Body.String())
}

func (s *APISuite) TestDownloadServesNestedObjectKeys() {
	s.pipeline.result = model.Result{
		Key:        "recordings/2024/standup.m4a",
		Transcript: "status update",
		Downloads:  model.TranscriptDownloads("recordings/2024/standup.m4a", "status update", nil),
	}

	recorder := s.do(http.MethodPost, "/api/v1/transcriptions", `{"key":"recordings/2024/standup.m4a"}`)
	s.Require().Equal(http.StatusOK, recorder.Code)

	recorder = s.do(http.MethodGet, "/api/v1/transcriptions/current/downloads/recordings/2024/standup.m4a_transcript.txt", "")
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.Assert().Equal("status update", recorder.Body.String())
	s.Assert().Contains(recorder.Header().Get("Content-Disposition"), "standup.m4a_transcript.txt")
}

func (s *APISuite) TestDownloadUnknownNameOrNoResult() {
	recorder := s.do(http.MethodGet, "/api/v1/transcriptions/current/downloads/x.txt", "")
	s.Assert().Equal(http.StatusNotFound, recorder.Code)

	s.do(http.MethodPost, "/api/v1/transcriptions", `{"key":"c.mp3","language":"French"}`)
	recorder = s.do(http.MethodGet, "/api/v1/transcriptions/current/downloads/x.txt", "")
	s.Assert().Equal(http.StatusNotFound, recorder.Code)
}

func (s *APISuite) TestCurrentTranscription() {
	recorder := s.do(http.MethodGet, "/api/v1/transcriptions/current", "")
	s.Assert().Equal(http.StatusNotFound, recorder.Code)

	s.do(http.MethodPost, "/api/v1/transcriptions", `{"key":"c.mp3","language":"French"}`)
	recorder = s.do(http.MethodGet, "/api/v1/transcriptions/current", "")
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.Assert().Contains(recorder.Body.String(), "Bonjour")
}
