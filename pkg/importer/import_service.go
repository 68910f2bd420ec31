package importer

import (
	"Cost-Calculator/domain"
	"Cost-Calculator/internal/utils/storage"
	"Cost-Calculator/pkg/catalog"
	"Cost-Calculator/pkg/numeric"
	"context"
	"fmt"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"mime/multipart"
	"time"
)

const (
	archiveFolder = "imports"
	zipMIME       = "application/zip"
)

// Notifier delivers the post-import summary mail.
type Notifier func(subject, body string) error

type (
	ImportService interface {
		Import(ctx context.Context, file *multipart.FileHeader) (domain.ImportSummary, error)
	}

	importService struct {
		catalogService catalog.CatalogService
		s3             storage.AwsS3
		notify         Notifier
	}
)

// NewImportService accepts a nil s3 (no archiving) and a nil notify (no mail).
func NewImportService(catalogService catalog.CatalogService, s3 storage.AwsS3, notify Notifier) ImportService {
	return &importService{
		catalogService: catalogService,
		s3:             s3,
		notify:         notify,
	}
}

func (s *importService) Import(ctx context.Context, file *multipart.FileHeader) (domain.ImportSummary, error) {
	if err := checkWorkbook(file); err != nil {
		return domain.ImportSummary{}, err
	}

	current, err := s.catalogService.GetCatalog(ctx)
	if err != nil {
		return domain.ImportSummary{}, err
	}

	src, err := file.Open()
	if err != nil {
		return domain.ImportSummary{}, err
	}
	defer src.Close()

	parsed, err := ParseWorkbook(src, current.Menus)
	if err != nil {
		return domain.ImportSummary{}, err
	}

	summary := domain.ImportSummary{
		Sheets:      parsed.Sheets,
		Ingredients: len(parsed.Ingredients),
		Menus:       len(parsed.Menus),
		Recipes:     len(parsed.Recipes),
		Options:     len(parsed.Options),
	}

	objectKey := s.archive(ctx, file)
	if objectKey != "" {
		summary.ArchiveURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.catalogService.ReplaceAll(ctx, Merge(parsed, current)); err != nil {
		if objectKey != "" {
			if delErr := s.s3.DeleteFile(ctx, objectKey); delErr != nil {
				log.Warnf("failed to remove archived workbook %s: %v", objectKey, delErr)
			}
		}
		return domain.ImportSummary{}, err
	}

	s.sendSummary(file.Filename, summary)
	return summary, nil
}

// Merge keeps current collections the workbook did not provide. Recipes
// follow menus: they are kept only when neither menus nor recipes were parsed.
func Merge(parsed domain.ImportResult, current domain.Catalog) domain.ReplaceAllRequest {
	req := domain.ReplaceAllRequest{
		Ingredients: parsed.Ingredients,
		Menus:       parsed.Menus,
		Recipes:     parsed.Recipes,
		Options:     parsed.Options,
	}

	if len(req.Ingredients) == 0 {
		req.Ingredients = make([]domain.IngredientRow, 0, len(current.Ingredients))
		for _, it := range current.Ingredients {
			req.Ingredients = append(req.Ingredients, domain.IngredientRow{
				ID:       it.ID,
				Name:     it.Name,
				TotalQty: numeric.Number(it.TotalQty),
				BuyPrice: numeric.Number(it.BuyPrice),
			})
		}
	}

	if len(req.Menus) == 0 {
		req.Menus = make([]domain.MenuRow, 0, len(current.Menus))
		for _, m := range current.Menus {
			req.Menus = append(req.Menus, domain.MenuRow{
				ID:       m.ID,
				Name:     m.Name,
				Category: m.Category,
				PriceS:   numeric.Number(m.PriceS),
				PriceM:   numeric.Number(m.PriceM),
				PriceL:   numeric.Number(m.PriceL),
				PriceP:   numeric.Number(m.PriceP),
			})
		}
		if len(req.Recipes) == 0 {
			req.Recipes = make([]domain.RecipeRow, 0, len(current.Recipes))
			for _, r := range current.Recipes {
				req.Recipes = append(req.Recipes, domain.RecipeRow{
					ID:             r.ID,
					MenuID:         r.MenuID,
					Size:           string(r.Size),
					IngredientName: r.IngredientName,
					Qty:            numeric.Number(r.Qty),
				})
			}
		}
	}

	if len(req.Options) == 0 {
		req.Options = make([]domain.OptionRow, 0, len(current.Options))
		for _, o := range current.Options {
			enabled := o.Enabled
			req.Options = append(req.Options, domain.OptionRow{
				ID:         o.ID,
				Name:       o.Name,
				GroupID:    o.GroupID,
				Type:       string(o.Type),
				PriceDelta: numeric.Number(o.PriceDelta),
				CostDelta:  numeric.Number(o.CostDelta),
				MaxQty:     numeric.Number(float64(o.MaxQty)),
				Enabled:    &enabled,
			})
		}
	}

	return req
}

// checkWorkbook sniffs the upload; xlsx files are zip containers.
func checkWorkbook(file *multipart.FileHeader) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return err
	}
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is(zipMIME) {
			return nil
		}
	}
	return fmt.Errorf("%w: detected %s", domain.ErrInvalidWorkbook, mtype.String())
}

func (s *importService) archive(ctx context.Context, file *multipart.FileHeader) string {
	if s.s3 == nil {
		return ""
	}
	name := fmt.Sprintf("%s-%s", time.Now().Format("20060102-150405"), uuid.NewString())
	objectKey, err := s.s3.UploadFile(ctx, name, file, archiveFolder, storage.AllowSpreadsheet...)
	if err != nil {
		log.Warnf("failed to archive workbook %s: %v", file.Filename, err)
		return ""
	}
	return objectKey
}

func (s *importService) sendSummary(filename string, summary domain.ImportSummary) {
	if s.notify == nil {
		return
	}
	body := fmt.Sprintf(
		"<p>Workbook <b>%s</b> was imported.</p>"+
			"<ul><li>Ingredients: %d</li><li>Menus: %d</li><li>Recipe lines: %d</li><li>Options: %d</li></ul>",
		filename, summary.Ingredients, summary.Menus, summary.Recipes, summary.Options,
	)
	if summary.ArchiveURL != "" {
		body += fmt.Sprintf(`<p>Archived copy: <a href="%s">%s</a></p>`, summary.ArchiveURL, summary.ArchiveURL)
	}
	if err := s.notify("Catalog import completed", body); err != nil {
		log.Warnf("failed to send import notification: %v", err)
	}
}
