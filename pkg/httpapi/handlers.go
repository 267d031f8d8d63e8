package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/model"
)

// Lister queries the bucket for audio object keys. Listing is never cached:
// every list request hits the store again.
type Lister interface {
	ListAudioObjects(ctx context.Context, bucket string) ([]string, error)
}

// PipelineRunner runs one full execution for a selected key and language.
type PipelineRunner interface {
	Run(ctx context.Context, key string, choice model.LanguageChoice) (model.Result, error)
}

type API struct {
	lister   Lister
	pipeline PipelineRunner
	bucket   string
	store    *SessionStore
}

func NewAPI(lister Lister, pipeline PipelineRunner, bucket string, store *SessionStore) *API {
	return &API{
		lister:   lister,
		pipeline: pipeline,
		bucket:   bucket,
		store:    store,
	}
}

func (a *API) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/audio-files", a.listAudioFiles)
	r.GET("/languages", a.listLanguages)
	r.POST("/transcriptions", a.createTranscription)
	r.GET("/transcriptions/current", a.currentTranscription)
	// Wildcard, not :name — download names embed the object key, which may
	// contain slashes.
	r.GET("/transcriptions/current/downloads/*name", a.downloadResult)
}

func (a *API) listAudioFiles(c *gin.Context) {
	keys, err := a.lister.ListAudioObjects(c.Request.Context(), a.bucket)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": keys})
}

func (a *API) listLanguages(c *gin.Context) {
	choices := model.SupportedLanguages()
	labels := make([]string, 0, len(choices))
	for _, choice := range choices {
		labels = append(labels, choice.Label)
	}

	c.JSON(http.StatusOK, gin.H{"languages": labels})
}

type transcriptionPayload struct {
	Key      string `json:"key"`
	Language string `json:"language"`
}

func (p transcriptionPayload) Validate() error {
	if p.Key == "" {
		return errors.New("key is required")
	}
	return nil
}

type transcriptionResponse struct {
	Key         string             `json:"key"`
	Transcript  string             `json:"transcript"`
	Translation *model.Translation `json:"translation,omitempty"`
	Downloads   []string           `json:"downloads"`
}

func (a *API) createTranscription(c *gin.Context) {
	var payload transcriptionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	language := payload.Language
	if language == "" {
		language = model.NoTranslationLabel
	}
	choice, ok := model.LanguageByLabel(language)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown language %q", payload.Language)})
		return
	}

	result, err := a.pipeline.Run(c.Request.Context(), payload.Key, choice)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": errorMessage(err)})
		return
	}

	a.store.Set(result)
	c.JSON(http.StatusOK, toTranscriptionResponse(result))
}

func (a *API) currentTranscription(c *gin.Context) {
	result, ok := a.store.Current()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no transcription available"})
		return
	}

	c.JSON(http.StatusOK, toTranscriptionResponse(result))
}

func (a *API) downloadResult(c *gin.Context) {
	result, ok := a.store.Current()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no transcription available"})
		return
	}

	name := strings.TrimPrefix(c.Param("name"), "/")
	download, ok := result.Download(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no download named %q", name)})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.FileName))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", download.Content)
}

func toTranscriptionResponse(result model.Result) transcriptionResponse {
	names := make([]string, 0, len(result.Downloads))
	for _, d := range result.Downloads {
		names = append(names, d.FileName)
	}

	return transcriptionResponse{
		Key:         result.Key,
		Transcript:  result.Transcript,
		Translation: result.Translation,
		Downloads:   names,
	}
}

// errorMessage renders the single user-visible message for a failed
// interaction, carrying the underlying cause string verbatim.
func errorMessage(err error) string {
	return fmt.Sprintf("An error occurred: %s", err)
}
