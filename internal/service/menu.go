package service

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"tiffin-pos-frontend/internal/domain"

	"github.com/rs/zerolog"
)

type ImageTab string

const (
	TabUpload ImageTab = "upload"
	TabURL    ImageTab = "url"
)

// FormState is the menu admin form between renders. EditingID presence
// toggles create-vs-update mode.
type FormState struct {
	EditingID    *int
	Name         string
	Price        string
	Description  string
	ImageTab     ImageTab
	ImageURL     string
	PreviewURL   string
	PreviewShown bool
	ScrollToForm bool
}

type MenuFormService struct {
	mu       sync.Mutex
	backend  Backend
	notifier Notifier
	prober   ImageProber
	log      zerolog.Logger
	state    FormState
}

func NewMenuFormService(backend Backend, notifier Notifier, prober ImageProber, log zerolog.Logger) *MenuFormService {
	return &MenuFormService{
		backend:  backend,
		notifier: notifier,
		prober:   prober,
		log:      log.With().Str("component", "menu-form").Logger(),
		state:    FormState{ImageTab: TabUpload},
	}
}

func (s *MenuFormService) State() FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SwitchImageTab activates one image input mode and clears the other mode's
// value, so a submission can never carry both.
func (s *MenuFormService) SwitchImageTab(tab ImageTab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch tab {
	case TabUpload:
		s.state.ImageTab = TabUpload
		s.state.ImageURL = ""
		s.state.PreviewURL = ""
		s.state.PreviewShown = false
	case TabURL:
		s.state.ImageTab = TabURL
	}
}

// PreviewImage live-previews a direct image URL. Only absolute http(s) URLs
// are probed; a load failure hides the preview and notifies.
func (s *MenuFormService) PreviewImage(ctx context.Context, rawURL string) {
	rawURL = strings.TrimSpace(rawURL)
	if !isAbsoluteURL(rawURL) {
		s.mu.Lock()
		s.state.PreviewShown = false
		s.state.PreviewURL = ""
		s.mu.Unlock()
		return
	}
	if err := s.prober.Probe(ctx, rawURL); err != nil {
		s.log.Warn().Err(err).Str("url", rawURL).Msg("image URL failed to load")
		s.mu.Lock()
		s.state.PreviewShown = false
		s.state.PreviewURL = ""
		s.mu.Unlock()
		s.notifier.Error("Invalid image URL")
		return
	}
	s.mu.Lock()
	s.state.ImageURL = rawURL
	s.state.PreviewURL = rawURL
	s.state.PreviewShown = true
	s.mu.Unlock()
}

// Submit routes the full record to create or update depending on edit mode.
// A populated URL wins over a file even if both slipped through the form.
// On failure the form state is left as-is for resubmission.
func (s *MenuFormService) Submit(ctx context.Context, form domain.MenuForm) (bool, error) {
	if form.ImageURL != "" {
		form.Image = nil
	}

	s.mu.Lock()
	editingID := s.state.EditingID
	s.mu.Unlock()

	if editingID != nil {
		if err := s.backend.UpdateMenuItem(ctx, *editingID, form); err != nil {
			s.log.Error().Err(err).Int("id", *editingID).Msg("failed to update menu item")
			s.notifier.Error("Error updating menu item")
			return false, err
		}
		s.notifier.Success("Menu item updated successfully!")
	} else {
		if err := s.backend.CreateMenuItem(ctx, form); err != nil {
			s.log.Error().Err(err).Msg("failed to create menu item")
			s.notifier.Error("Error adding menu item")
			return false, err
		}
		s.notifier.Success("Menu item added successfully!")
	}

	s.ResetForm()
	return true, nil
}

// EditItem populates the form for updating. The image tab is inferred from
// the stored path: absolute http(s) URLs select the URL tab with a live
// preview, upload paths select the upload tab.
func (s *MenuFormService) EditItem(id int, name string, price float64, description, imagePath string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.EditingID = &id
	s.state.Name = name
	s.state.Price = strconv.FormatFloat(price, 'f', 2, 64)
	s.state.Description = description
	s.state.ScrollToForm = true

	if isAbsoluteURL(imagePath) {
		s.state.ImageTab = TabURL
		s.state.ImageURL = imagePath
		s.state.PreviewURL = imagePath
		s.state.PreviewShown = true
	} else {
		s.state.ImageTab = TabUpload
		s.state.ImageURL = ""
		s.state.PreviewURL = ""
		s.state.PreviewShown = false
	}
}

func (s *MenuFormService) DeleteItem(ctx context.Context, id int, confirmed bool) (bool, error) {
	if !confirmed {
		return false, ErrNotConfirmed
	}
	if err := s.backend.DeleteMenuItem(ctx, id); err != nil {
		s.log.Error().Err(err).Int("id", id).Msg("failed to delete menu item")
		s.notifier.Error("Error deleting menu item")
		return false, err
	}
	s.notifier.Success("Menu item deleted successfully!")
	return true, nil
}

func (s *MenuFormService) ResetForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = FormState{ImageTab: TabUpload}
}

func isAbsoluteURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

var _ MenuFormServiceInterface = (*MenuFormService)(nil)
