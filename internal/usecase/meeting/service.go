package meeting

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	apperrors "github.com/johnquangdev/meeting-intelligence/errors"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
	"github.com/johnquangdev/meeting-intelligence/pkg/config"
)

// Collaborator contracts, injected so the pipeline is testable with fakes.

// Transcriber converts meeting audio to text
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

// Analyzer extracts structured insights from a transcription; it returns the
// raw JSON payload which the parser validates
type Analyzer interface {
	AnalyzeTranscript(ctx context.Context, transcription string) (string, error)
}

// Embedder maps text to a fixed-length vector
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Translator translates text to a target language
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// ImageGenerator renders a visual summary and returns its URL
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// BlobStore persists uploaded audio files
type BlobStore interface {
	Upload(ctx context.Context, objectName string, content io.Reader, size int64, contentType string) (string, error)
	Download(ctx context.Context, objectName string) (io.ReadCloser, error)
}

// UploadInput carries one multipart audio upload
type UploadInput struct {
	Title       string
	Filename    string
	Size        int64
	ContentType string
	Content     io.Reader
}

// Service drives the meeting lifecycle: upload, the enrichment pipeline and
// translations.
type Service struct {
	meetingRepo     repositories.MeetingRepository
	translationRepo repositories.TranslationRepository
	transcriber     Transcriber
	analyzer        Analyzer
	embedder        Embedder
	translator      Translator
	imageGen        ImageGenerator
	blobs           BlobStore
	parser          *Parser
	uploadCfg       config.UploadConfig
	logger          *zap.Logger
}

// NewService constructs the meeting service
func NewService(
	meetingRepo repositories.MeetingRepository,
	translationRepo repositories.TranslationRepository,
	transcriber Transcriber,
	analyzer Analyzer,
	embedder Embedder,
	translator Translator,
	imageGen ImageGenerator,
	blobs BlobStore,
	uploadCfg config.UploadConfig,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetingRepo:     meetingRepo,
		translationRepo: translationRepo,
		transcriber:     transcriber,
		analyzer:        analyzer,
		embedder:        embedder,
		translator:      translator,
		imageGen:        imageGen,
		blobs:           blobs,
		parser:          NewParser(),
		uploadCfg:       uploadCfg,
		logger:          logger,
	}
}

// Upload validates and stores a meeting recording, commits the initial
// record, then runs the enrichment pipeline. The initial record survives an
// enrichment failure; enrichment itself commits all-or-nothing.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*entities.Meeting, error) {
	// Fail fast, before any persistence or provider call.
	extension := strings.ToLower(filepath.Ext(in.Filename))
	if !s.extensionAllowed(extension) {
		return nil, apperrors.ErrInvalidFileType(extension, s.uploadCfg.AllowedExtensions)
	}
	if in.Size > s.uploadCfg.MaxFileSizeBytes() {
		return nil, apperrors.ErrFileTooLarge(in.Size, s.uploadCfg.MaxFileSizeBytes())
	}

	objectName := fmt.Sprintf("%s_%s", time.Now().UTC().Format("20060102_150405"), in.Filename)
	audioURL, err := s.blobs.Upload(ctx, objectName, in.Content, in.Size, in.ContentType)
	if err != nil {
		return nil, apperrors.ErrStorageFailed("upload audio", err)
	}

	meeting := entities.NewMeeting(in.Title, objectName, audioURL)
	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, apperrors.ErrDBQueryFailed("create meeting", err)
	}

	if s.logger != nil {
		s.logger.Info("meeting uploaded",
			zap.String("meeting_id", meeting.ID.String()),
			zap.String("object_name", objectName),
			zap.Int64("size_bytes", in.Size),
		)
	}

	if err := s.enrich(ctx, meeting); err != nil {
		if s.logger != nil {
			s.logger.Error("enrichment failed, meeting kept in pre-enrichment state",
				zap.String("meeting_id", meeting.ID.String()),
				zap.Error(err),
			)
		}
		return nil, err
	}

	return meeting, nil
}

// enrich runs the sequential pipeline: transcribe, analyze, embed, generate
// a visual summary. Results accumulate in a staged Enrichment and commit as
// one unit at the end; any step failure commits nothing. Provider calls are
// not retried.
func (s *Service) enrich(ctx context.Context, meeting *entities.Meeting) error {
	audio, err := s.blobs.Download(ctx, meeting.AudioFilename)
	if err != nil {
		return apperrors.ErrStorageFailed("download audio", err)
	}
	defer audio.Close()

	transcription, err := s.transcriber.Transcribe(ctx, meeting.AudioFilename, audio)
	if err != nil {
		return apperrors.ErrProviderFailed("transcription", err)
	}

	rawAnalysis, err := s.analyzer.AnalyzeTranscript(ctx, transcription)
	if err != nil {
		return apperrors.ErrProviderFailed("analysis", err)
	}
	analysis, err := s.parser.ParseAnalysis(rawAnalysis)
	if err != nil {
		return apperrors.ErrMalformedAnalysis(err)
	}

	// Embedding input is the title and summary joined by a newline.
	embeddingText := fmt.Sprintf("%s\n%s", meeting.Title, analysis.Summary)
	vector, err := s.embedder.Embed(ctx, embeddingText)
	if err != nil {
		return apperrors.ErrProviderFailed("embedding", err)
	}

	enrichment := &entities.Enrichment{
		Transcription: transcription,
		Summary:       analysis.Summary,
		ActionItems:   analysis.ActionItems,
		Decisions:     analysis.Decisions,
		Embedding:     pgvector.NewVector(vector),
		AnalysisRaw:   datatypes.JSON(extractJSON(rawAnalysis)),
	}

	if prompt := visualSummaryPrompt(analysis); prompt != "" {
		visualURL, err := s.imageGen.GenerateImage(ctx, prompt)
		if err != nil {
			return apperrors.ErrProviderFailed("visual summary", err)
		}
		enrichment.VisualSummaryURL = &visualURL
	}

	if err := s.meetingRepo.UpdateEnrichment(ctx, meeting.ID, enrichment); err != nil {
		return apperrors.ErrDBTransactionFailed(err)
	}
	meeting.Apply(enrichment)

	if s.logger != nil {
		s.logger.Info("meeting enriched",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Int("action_items", len(analysis.ActionItems)),
			zap.Int("decisions", len(analysis.Decisions)),
			zap.Bool("visual_summary", enrichment.VisualSummaryURL != nil),
		)
	}
	return nil
}

// Get fetches one meeting
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("get meeting", err)
	}
	if meeting == nil {
		return nil, apperrors.ErrNotFound("Meeting").WithDetail("meeting_id", id.String())
	}
	return meeting, nil
}

// List returns all meetings, newest first
func (s *Service) List(ctx context.Context) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.List(ctx)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list meetings", err)
	}
	return meetings, nil
}

// Translate returns the stored translation for (meeting, language) or
// creates one. An existing row is returned without re-invoking the provider.
// Two concurrent uncached requests for the same pair may both call the
// provider and both persist; that race is tolerated.
func (s *Service) Translate(ctx context.Context, meetingID uuid.UUID, targetLanguage string) (*entities.Translation, error) {
	meeting, err := s.Get(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting.Transcription == nil || *meeting.Transcription == "" {
		return nil, apperrors.ErrMeetingNotTranscribed(meetingID.String())
	}

	existing, err := s.translationRepo.GetByMeetingAndLanguage(ctx, meetingID, targetLanguage)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("get translation", err)
	}
	if existing != nil {
		return existing, nil
	}

	translatedText, err := s.translator.Translate(ctx, *meeting.Transcription, targetLanguage)
	if err != nil {
		return nil, apperrors.ErrProviderFailed("translation", err)
	}

	translation := entities.NewTranslation(meetingID, targetLanguage, translatedText)
	if err := s.translationRepo.Create(ctx, translation); err != nil {
		return nil, apperrors.ErrDBQueryFailed("create translation", err)
	}

	if s.logger != nil {
		s.logger.Info("translation created",
			zap.String("meeting_id", meetingID.String()),
			zap.String("target_language", targetLanguage),
		)
	}
	return translation, nil
}

// ListTranslations returns all translations for a meeting
func (s *Service) ListTranslations(ctx context.Context, meetingID uuid.UUID) ([]*entities.Translation, error) {
	translations, err := s.translationRepo.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list translations", err)
	}
	return translations, nil
}

func (s *Service) extensionAllowed(extension string) bool {
	for _, allowed := range s.uploadCfg.AllowedExtensions {
		if extension == allowed {
			return true
		}
	}
	return false
}

// visualSummaryPrompt builds the image prompt from up to three action item
// tasks, falling back to decisions. Empty when there is nothing to seed it.
func visualSummaryPrompt(analysis *entities.AnalysisResult) string {
	keyPoints := make([]string, 0, 3)
	for _, item := range analysis.ActionItems {
		if len(keyPoints) == 3 {
			break
		}
		keyPoints = append(keyPoints, item.Task)
	}
	if len(keyPoints) == 0 {
		for _, d := range analysis.Decisions {
			if len(keyPoints) == 3 {
				break
			}
			keyPoints = append(keyPoints, d.Decision)
		}
	}
	if len(keyPoints) == 0 {
		return ""
	}

	return fmt.Sprintf(
		"Create a professional infographic-style visual summary of a meeting. The meeting summary: %s. Key points to highlight: %s. Use corporate colors, clean design, and visual metaphors for the concepts discussed.",
		analysis.Summary,
		strings.Join(keyPoints, ", "),
	)
}
