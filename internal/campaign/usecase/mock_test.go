package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"campaign-srv/internal/campaign"
	"campaign-srv/internal/campaign/repository"
	"campaign-srv/internal/document"
	"campaign-srv/internal/model"
	"campaign-srv/pkg/gemini"
	"campaign-srv/pkg/log"
	"campaign-srv/pkg/minio"
	"campaign-srv/pkg/tokens"
)

type fakeRepo struct {
	campaigns map[string]model.Campaign
	seq       int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{campaigns: map[string]model.Campaign{}}
}

func (r *fakeRepo) seed(camp model.Campaign) model.Campaign {
	if camp.ID == "" {
		r.seq++
		camp.ID = fmt.Sprintf("camp-%d", r.seq)
	}
	if camp.StepOutputs == nil {
		camp.StepOutputs = map[string]model.StepOutput{}
	}
	r.campaigns[camp.ID] = camp
	return camp
}

func (r *fakeRepo) CreateCampaign(_ context.Context, opt repository.CreateCampaignOptions) (model.Campaign, error) {
	now := time.Now()
	return r.seed(model.Campaign{
		ProjectID:   opt.ProjectID,
		ECPName:     opt.ECPName,
		ProblemCore: opt.ProblemCore,
		Country:     opt.Country,
		Industry:    opt.Industry,
		Status:      model.CampaignStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}), nil
}

func (r *fakeRepo) GetCampaignByID(_ context.Context, id string) (model.Campaign, error) {
	camp, ok := r.campaigns[id]
	if !ok {
		return model.Campaign{}, repository.ErrNotFound
	}
	outputs := make(map[string]model.StepOutput, len(camp.StepOutputs))
	for k, v := range camp.StepOutputs {
		outputs[k] = v
	}
	camp.StepOutputs = outputs
	return camp, nil
}

func (r *fakeRepo) ListCampaigns(_ context.Context, opt repository.ListCampaignsOptions) ([]model.Campaign, int64, error) {
	var out []model.Campaign
	for _, camp := range r.campaigns {
		if camp.ProjectID == opt.ProjectID {
			out = append(out, camp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) TryMarkRunning(_ context.Context, id string, startedAt time.Time) (bool, error) {
	camp, ok := r.campaigns[id]
	if !ok || camp.Status == model.CampaignStatusRunning {
		return false, nil
	}
	camp.Status = model.CampaignStatusRunning
	camp.StartedAt = &startedAt
	camp.CompletedAt = nil
	camp.ErrorMessage = ""
	camp.CurrentStepID = ""
	r.campaigns[id] = camp
	return true, nil
}

func (r *fakeRepo) FinishRun(_ context.Context, opt repository.FinishRunOptions) error {
	camp, ok := r.campaigns[opt.ID]
	if !ok {
		return repository.ErrNotFound
	}
	camp.Status = opt.Status
	camp.ErrorMessage = opt.ErrorMessage
	camp.CurrentStepID = opt.CurrentStepID
	camp.CompletedAt = &opt.CompletedAt
	r.campaigns[opt.ID] = camp
	return nil
}

func (r *fakeRepo) SetCurrentStep(_ context.Context, id, stepID string) error {
	camp, ok := r.campaigns[id]
	if !ok {
		return repository.ErrNotFound
	}
	camp.CurrentStepID = stepID
	r.campaigns[id] = camp
	return nil
}

func (r *fakeRepo) SaveStepOutput(_ context.Context, id, stepID string, output model.StepOutput) error {
	camp, ok := r.campaigns[id]
	if !ok {
		return repository.ErrNotFound
	}
	camp.StepOutputs[stepID] = output
	r.campaigns[id] = camp
	return nil
}

type fakeSessions struct {
	locks    map[string]bool
	sessions map[string]repository.SuggestionSession
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{
		locks:    map[string]bool{},
		sessions: map[string]repository.SuggestionSession{},
	}
}

func sessionKey(campaignID, stepID string) string {
	return campaignID + "/" + stepID
}

func (s *fakeSessions) AcquireSuggestionLock(_ context.Context, campaignID, stepID string, _ time.Duration) (bool, error) {
	key := sessionKey(campaignID, stepID)
	if s.locks[key] {
		return false, nil
	}
	s.locks[key] = true
	return true, nil
}

func (s *fakeSessions) ReleaseSuggestionLock(_ context.Context, campaignID, stepID string) error {
	delete(s.locks, sessionKey(campaignID, stepID))
	return nil
}

func (s *fakeSessions) SaveSession(_ context.Context, sess repository.SuggestionSession, _ time.Duration) error {
	s.sessions[sessionKey(sess.CampaignID, sess.StepID)] = sess
	return nil
}

func (s *fakeSessions) GetSession(_ context.Context, campaignID, stepID string) (repository.SuggestionSession, error) {
	sess, ok := s.sessions[sessionKey(campaignID, stepID)]
	if !ok {
		return repository.SuggestionSession{}, repository.ErrNotFound
	}
	return sess, nil
}

func (s *fakeSessions) DeleteSession(_ context.Context, campaignID, stepID string) error {
	delete(s.sessions, sessionKey(campaignID, stepID))
	return nil
}

// fakeDocUC serves only the selection-resolution half of the document
// domain; the CRUD half is not reached from the campaign usecase.
type fakeDocUC struct {
	selected map[string][]model.Document
}

func newFakeDocUC() *fakeDocUC {
	return &fakeDocUC{selected: map[string][]model.Document{}}
}

func (d *fakeDocUC) Create(context.Context, document.CreateInput) (model.Document, error) {
	return model.Document{}, errors.New("not implemented")
}

func (d *fakeDocUC) Get(context.Context, string) (model.Document, error) {
	return model.Document{}, errors.New("not implemented")
}

func (d *fakeDocUC) List(context.Context, document.ListInput) (document.ListOutput, error) {
	return document.ListOutput{}, errors.New("not implemented")
}

func (d *fakeDocUC) Delete(context.Context, string) error {
	return errors.New("not implemented")
}

func (d *fakeDocUC) SaveSelection(context.Context, document.SaveSelectionInput) (model.StepSelection, error) {
	return model.StepSelection{}, errors.New("not implemented")
}

func (d *fakeDocUC) GetSelection(context.Context, string, string) (model.StepSelection, error) {
	return model.StepSelection{}, errors.New("not implemented")
}

func (d *fakeDocUC) GetSelectedDocuments(_ context.Context, _, stepID string) ([]model.Document, error) {
	return d.selected[stepID], nil
}

type fakeGemini struct {
	generate func(prompt string) (*gemini.GenerateResult, error)
	prompts  []string
}

func (g *fakeGemini) Generate(ctx context.Context, prompt string) (string, error) {
	res, err := g.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

func (g *fakeGemini) GenerateContent(_ context.Context, prompt string) (*gemini.GenerateResult, error) {
	g.prompts = append(g.prompts, prompt)
	if g.generate != nil {
		return g.generate(prompt)
	}
	return &gemini.GenerateResult{Text: "generated"}, nil
}

type fakeProducer struct {
	published [][]byte
}

func (p *fakeProducer) Publish(_, value []byte) error {
	p.published = append(p.published, value)
	return nil
}

func (p *fakeProducer) Close() error       { return nil }
func (p *fakeProducer) HealthCheck() error { return nil }

type fakeStorage struct {
	buckets  []string
	uploaded map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploaded: map[string][]byte{}}
}

func (s *fakeStorage) EnsureBucket(_ context.Context, bucketName string) error {
	s.buckets = append(s.buckets, bucketName)
	return nil
}

func (s *fakeStorage) UploadFile(_ context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	data, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	s.uploaded[req.ObjectName] = data
	return &minio.FileInfo{ObjectName: req.ObjectName, Size: req.Size}, nil
}

func (s *fakeStorage) GetPresignedDownloadURL(_ context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	return &minio.PresignedURLResponse{
		URL:       fmt.Sprintf("https://minio.local/%s/%s", req.BucketName, req.ObjectName),
		ExpiresAt: time.Now().Add(req.Expiry),
	}, nil
}

type testEngine struct {
	uc       campaign.UseCase
	repo     *fakeRepo
	sessions *fakeSessions
	docs     *fakeDocUC
	gemini   *fakeGemini
	producer *fakeProducer
	storage  *fakeStorage
}

func newTestEngine(cfg Config) *testEngine {
	if cfg.Limits.MaxLimit == 0 {
		cfg.Limits = tokens.DefaultLimits()
	}
	if cfg.GenerationTimeout == 0 {
		cfg.GenerationTimeout = time.Minute
	}
	if cfg.ExportBucket == "" {
		cfg.ExportBucket = "ecp-exports"
	}

	e := &testEngine{
		repo:     newFakeRepo(),
		sessions: newFakeSessions(),
		docs:     newFakeDocUC(),
		gemini:   &fakeGemini{},
		producer: &fakeProducer{},
		storage:  newFakeStorage(),
	}
	e.uc = New(e.repo, e.sessions, e.docs, e.gemini, e.producer, e.storage, cfg, log.NewNoopLogger())
	return e
}

func (e *testEngine) seedCampaign(status model.CampaignStatus, outputs map[string]model.StepOutput) model.Campaign {
	return e.repo.seed(model.Campaign{
		ProjectID:   "proj-1",
		ECPName:     "Solar ECP",
		ProblemCore: "rising energy costs",
		Country:     "Vietnam",
		Industry:    "Energy",
		Status:      status,
		StepOutputs: outputs,
	})
}

// selectDocsForAllSteps gives every pipeline step a one-document context.
func (e *testEngine) selectDocsForAllSteps() {
	for i, stepID := range []string{"step_1", "step_2", "step_3", "step_4"} {
		e.docs.selected[stepID] = []model.Document{{
			ID:       fmt.Sprintf("doc-%d", i+1),
			Filename: fmt.Sprintf("doc-%d.md", i+1),
			Content:  "reference material",
			Tokens:   5,
		}}
	}
}
