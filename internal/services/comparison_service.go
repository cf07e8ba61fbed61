package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	apierrors "medication-dashboard/internal/errors"
	"medication-dashboard/internal/models"
	"medication-dashboard/internal/repositories"

	"github.com/shopspring/decimal"
)

const (
	// DashboardTitle is the page heading
	DashboardTitle = "Dashboard Sebaran Obat di Tiap Rumah Sakit 💊"
	// IdleInstruction is shown until the user confirms a selection
	IdleInstruction = "Gunakan filter di atas, lalu tekan tombol 'Tampilkan Perbandingan' untuk melihat hasil."
	// DefaultWordCloudPath serves the per-tab word-cloud image
	DefaultWordCloudPath = "/wordcloud.png"
)

// WordCloudURL builds the image URL for a pair under the given path
func WordCloudURL(path string, pair models.ComparisonPair) string {
	q := url.Values{}
	q.Set("treatment", pair.Treatment)
	q.Set("provider", pair.Provider)
	return path + "?" + q.Encode()
}

type ComparisonService struct {
	claimRepo     repositories.ClaimRepositoryInterface
	filterService FilterServiceInterface
	metrics       MetricsRecorderInterface
	logger        DashboardLoggerInterface
	wordCloudPath string
}

func NewComparisonService(
	claimRepo repositories.ClaimRepositoryInterface,
	filterService FilterServiceInterface,
	metrics MetricsRecorderInterface,
	logger DashboardLoggerInterface,
) ComparisonServiceInterface {
	return &ComparisonService{
		claimRepo:     claimRepo,
		filterService: filterService,
		metrics:       metrics,
		logger:        logger,
		wordCloudPath: DefaultWordCloudPath,
	}
}

func (s *ComparisonService) Idle(ctx context.Context, selection models.FilterSelection) (*models.DashboardView, error) {
	view, err := s.newView(ctx, models.StateIdle, selection)
	if err != nil {
		return nil, err
	}
	view.Notices = append(view.Notices, models.Notice{
		Level:   models.NoticeInfo,
		Message: IdleInstruction,
	})
	return view, nil
}

// Compare renders one tab per pair of the selection's cross product. Empty
// selections and empty cross products render a single warning and no tabs.
func (s *ComparisonService) Compare(ctx context.Context, selection models.FilterSelection) (*models.DashboardView, error) {
	start := time.Now()

	view, err := s.newView(ctx, models.StateRendered, selection)
	if err != nil {
		return nil, err
	}

	pairs := selection.Pairs()
	if s.logger != nil {
		s.logger.LogComparisonRequested(ctx, selection, len(pairs))
	}

	if selection.IsEmpty() {
		view.Notices = append(view.Notices, warning(apierrors.FilterEmptySelection))
		s.skip(ctx, "empty_selection")
		return view, nil
	}
	if len(pairs) == 0 {
		view.Notices = append(view.Notices, warning(apierrors.FilterEmptyCrossProduct))
		s.skip(ctx, "empty_cross_product")
		return view, nil
	}

	emptyTabs := 0
	for _, pair := range pairs {
		filtered, err := s.FilteredView(ctx, pair)
		if err != nil {
			s.recordOutcome("failed")
			return nil, err
		}
		tab := s.buildTab(filtered)
		if !tab.HasData() {
			emptyTabs++
			s.recordPair("empty")
		} else {
			s.recordPair("rendered")
		}
		view.Tabs = append(view.Tabs, tab)
	}

	duration := time.Since(start)
	s.recordOutcome("rendered")
	if s.metrics != nil {
		s.metrics.RecordProcessingTime("comparison", duration)
	}
	if s.logger != nil {
		s.logger.LogComparisonCompleted(ctx, len(view.Tabs), emptyTabs, duration.Milliseconds())
	}

	return view, nil
}

func (s *ComparisonService) FilteredView(ctx context.Context, pair models.ComparisonPair) (models.FilteredView, error) {
	lines, err := s.claimRepo.FindByPair(ctx, pair.Treatment, pair.Provider)
	if err != nil {
		return models.FilteredView{}, fmt.Errorf("failed to filter claim lines for %s: %w", pair.Label(), err)
	}
	return models.FilteredView{Pair: pair, Lines: lines}, nil
}

func (s *ComparisonService) buildTab(view models.FilteredView) models.ComparisonTab {
	tab := models.ComparisonTab{
		Label: view.Pair.Label(),
		Pair:  view.Pair,
	}
	if view.IsEmpty() {
		notice := warning(apierrors.FilterEmptyView)
		tab.Notice = &notice
		return tab
	}

	tab.Rows = make([]models.TableRow, 0, len(view.Lines))
	total := decimal.Zero
	items := make([]string, 0, len(view.Lines))
	for _, line := range view.Lines {
		tab.Rows = append(tab.Rows, models.TableRow{
			TreatmentPlace: line.TreatmentPlace,
			GroupProvider:  line.GroupProvider,
			ItemName:       line.ItemName,
			Qty:            line.Qty,
			AmountBill:     line.AmountBill,
		})
		if line.AmountBill.Valid {
			total = total.Add(line.AmountBill.Decimal)
		}
		if line.ItemName != "" {
			items = append(items, line.ItemName)
		}
	}

	tab.RecordCount = len(view.Lines)
	tab.TotalAmount = total
	tab.FormattedTotal = FormatRupiah(total)
	tab.WordCloudText = strings.Join(items, " ")
	if tab.WordCloudText != "" {
		tab.WordCloudURL = WordCloudURL(s.wordCloudPath, view.Pair)
	}
	return tab
}

func (s *ComparisonService) newView(ctx context.Context, state models.DashboardState, selection models.FilterSelection) (*models.DashboardView, error) {
	options, err := s.filterService.Options(ctx)
	if err != nil {
		return nil, err
	}
	return &models.DashboardView{
		State:     state,
		Title:     DashboardTitle,
		Options:   options,
		Selection: selection,
		Notices:   []models.Notice{},
		Tabs:      []models.ComparisonTab{},
	}, nil
}

func (s *ComparisonService) skip(ctx context.Context, reason string) {
	s.recordOutcome(reason)
	if s.logger != nil {
		s.logger.LogComparisonSkipped(ctx, reason)
	}
}

func (s *ComparisonService) recordOutcome(outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter("comparisons_total", map[string]string{"outcome": outcome})
	}
}

func (s *ComparisonService) recordPair(outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter("comparison_pairs_total", map[string]string{"outcome": outcome})
	}
}

func warning(code apierrors.ErrorCode) models.Notice {
	return models.Notice{
		Level:   models.NoticeWarning,
		Code:    string(code),
		Message: apierrors.GetErrorMessage(code),
	}
}
