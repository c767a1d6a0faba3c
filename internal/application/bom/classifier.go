package bom

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/dto"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain"
	dombom "github.com/DiksySingh/InventorySystem2-sub002/internal/domain/bom"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/repository"
	"github.com/DiksySingh/InventorySystem2-sub002/pkg/config"
	"github.com/DiksySingh/InventorySystem2-sub002/pkg/logger"
)

// Entry is one resolved BOM line. For variant entries Key is the head class
// ("50M", ...) or the component label for pulled-in sub-parts, and Group is
// the head class the entry counts against. Common entries carry neither.
type Entry struct {
	Item     entity.Item
	Quantity decimal.Decimal
	Key      string
	Group    string
}

// Classification is the common/variant partition of a system's BOM.
type Classification struct {
	SystemID string
	Common   []Entry
	Variants []Entry
}

// VariantGroup returns the variant entries of one head class in order.
func (c *Classification) VariantGroup(headKey string) []Entry {
	var out []Entry
	for _, e := range c.Variants {
		if e.Group == headKey {
			out = append(out, e)
		}
	}
	return out
}

// Classifier partitions a system's BOM items into common items (required by
// every unit) and variant items (specific to one pump head class),
// resolving nested sub-items through the component map.
type Classifier struct {
	catalog repository.CatalogRepository
	cfg     config.BOMConfig
	log     *logger.Logger
}

// NewClassifier builds the classifier.
func NewClassifier(catalog repository.CatalogRepository, cfg config.BOMConfig, log *logger.Logger) *Classifier {
	return &Classifier{catalog: catalog, cfg: cfg, log: log}
}

// Classify loads all edges of a system and splits them into common and
// variant entries. Sub-items reachable from a variant item through the
// component map join that variant's group tagged with the component label;
// a directly-listed common item already pulled in as a variant dependency
// is dropped from the common set so it is not counted twice.
//
// Sub-item dedup is first-occurrence-wins per variant group: a later BOM
// edge for an already-added sub-item is ignored, not summed.
//
// Edges whose item reference is missing are skipped with a logged anomaly,
// never fatal. A system with zero edges yields empty sets.
func (c *Classifier) Classify(ctx context.Context, systemID string) (*Classification, error) {
	system, err := c.catalog.GetSystem(ctx, systemID)
	if err != nil {
		return nil, fmt.Errorf("get system: %w", err)
	}
	if system == nil {
		return nil, domain.ErrNotFound
	}

	edges, err := c.catalog.ListSystemItems(ctx, systemID)
	if err != nil {
		return nil, fmt.Errorf("list system items: %w", err)
	}

	result := &Classification{SystemID: systemID}

	// Pass 1: partition direct edges by the head class derived from the
	// item name.
	type variantRoot struct {
		item entity.Item
		key  string
	}
	var roots []variantRoot
	for _, edge := range edges {
		item, err := c.catalog.GetItem(ctx, edge.ItemID)
		if err != nil {
			return nil, fmt.Errorf("get item: %w", err)
		}
		if item == nil {
			c.logAnomaly(systemID, edge.ItemID)
			continue
		}
		if key, ok := dombom.HeadClassOf(item.Name, c.cfg.PumpHeadClasses); ok {
			result.Variants = append(result.Variants, Entry{Item: *item, Quantity: edge.Quantity, Key: key, Group: key})
			roots = append(roots, variantRoot{item: *item, key: key})
			continue
		}
		result.Common = append(result.Common, Entry{Item: *item, Quantity: edge.Quantity})
	}

	// Pass 2: expand each variant item's subtree through the component map.
	// seen carries the per-group dedup and cycle guard.
	seen := make(map[string]map[string]bool)
	for _, root := range roots {
		if seen[root.key] == nil {
			seen[root.key] = map[string]bool{root.item.ID: true}
		} else {
			seen[root.key][root.item.ID] = true
		}
		if err := c.expandSubItems(ctx, systemID, root.item.ID, root.key, seen[root.key], result); err != nil {
			return nil, err
		}
	}

	// Pass 3: drop common entries that a variant subtree pulled in, so a
	// shared sub-part never counts as both a common and a per-variant
	// requirement.
	pulled := make(map[string]bool)
	for _, e := range result.Variants {
		if e.Key == c.componentLabel() {
			pulled[e.Item.ID] = true
		}
	}
	if len(pulled) > 0 {
		kept := result.Common[:0]
		for _, e := range result.Common {
			if pulled[e.Item.ID] {
				continue
			}
			kept = append(kept, e)
		}
		result.Common = kept
	}

	return result, nil
}

// expandSubItems walks the component map below parentID depth-first, adding
// each newly seen sub-item to the variant group.
func (c *Classifier) expandSubItems(ctx context.Context, systemID, parentID, group string, seen map[string]bool, result *Classification) error {
	subEdges, err := c.catalog.ListSubItems(ctx, parentID)
	if err != nil {
		return fmt.Errorf("list sub items: %w", err)
	}
	for _, edge := range subEdges {
		if seen[edge.SubItemID] {
			// Duplicate within the group, or a cycle; first occurrence wins.
			continue
		}
		sub, err := c.catalog.GetItem(ctx, edge.SubItemID)
		if err != nil {
			return fmt.Errorf("get sub item: %w", err)
		}
		if sub == nil {
			c.logAnomaly(systemID, edge.SubItemID)
			continue
		}
		seen[edge.SubItemID] = true
		result.Variants = append(result.Variants, Entry{
			Item:     *sub,
			Quantity: edge.Quantity,
			Key:      c.componentLabel(),
			Group:    group,
		})
		if err := c.expandSubItems(ctx, systemID, edge.SubItemID, group, seen, result); err != nil {
			return err
		}
	}
	return nil
}

func (c *Classifier) componentLabel() string {
	if c.cfg.ComponentLabel != "" {
		return c.cfg.ComponentLabel
	}
	return dombom.ComponentKey
}

func (c *Classifier) logAnomaly(systemID, itemID string) {
	if c.log == nil {
		return
	}
	c.log.Warn().
		Str("system_id", systemID).
		Str("item_id", itemID).
		Err(domain.ErrInvalidBOM).
		Msg("BOM edge references a missing item, skipping")
}

// ToResponse maps a classification to its transport DTO.
func (c *Classification) ToResponse() *dto.ClassificationResponse {
	resp := &dto.ClassificationResponse{
		SystemID:     c.SystemID,
		CommonItems:  make([]dto.BOMItemDTO, 0, len(c.Common)),
		VariantItems: make([]dto.BOMItemDTO, 0, len(c.Variants)),
	}
	for _, e := range c.Common {
		resp.CommonItems = append(resp.CommonItems, dto.BOMItemDTO{
			ItemID:   e.Item.ID,
			ItemName: e.Item.Name,
			Unit:     e.Item.Unit,
			Quantity: e.Quantity,
		})
	}
	for _, e := range c.Variants {
		resp.VariantItems = append(resp.VariantItems, dto.BOMItemDTO{
			ItemID:   e.Item.ID,
			ItemName: e.Item.Name,
			Unit:     e.Item.Unit,
			Quantity: e.Quantity,
			Key:      e.Key,
			Group:    e.Group,
		})
	}
	return resp
}
