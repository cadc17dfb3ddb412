package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/plantshop/backend/internal/domain"
)

// The upstream API names the same logical field differently across
// endpoints. Each alias list is probed in order, first match wins; new
// aliases are additive.
var (
	categoryIDAliases   = []string{"category_id", "id", "categoryId", "_id"}
	categoryNameAliases = []string{"category", "category_name", "name"}

	plantIDAliases       = []string{"id", "plant_id", "plantId", "_id"}
	plantNameAliases     = []string{"name", "plant_name", "plantName", "title", "tree_name"}
	plantImageAliases    = []string{"image", "plant_image", "img", "image_url", "thumbnail"}
	plantCategoryAliases = []string{"category", "plant_category", "category_name"}
	plantPriceAliases    = []string{"price", "plant_price", "cost"}
	plantDescAliases     = []string{"short_description", "shortDescription", "description", "details"}

	fullDescriptionAliases = []string{"full_description", "description", "details"}
	wateringAliases        = []string{"watering", "water"}
)

const (
	// DescriptionLimit caps short descriptions on plant cards
	DescriptionLimit = 120

	// DefaultCategory labels plants whose record carries no category
	DefaultCategory = "Tree"

	// DefaultDescription is shown when neither the detail record nor the
	// summary fallback has any description text
	DefaultDescription = "No description available."

	// placeholderName is the upstream's own "missing name" marker; it is
	// treated as empty so it never reaches the user
	placeholderName = "Unknown Plant"
)

// NormalizeCategory converts a raw category record into the canonical
// Category. Returns nil only for non-object input; every object yields a
// Category, degrading ids and names to stringified fallbacks.
func NormalizeCategory(raw interface{}) *domain.Category {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}

	id, idOK := firstString(obj, categoryIDAliases)
	name, nameOK := firstString(obj, categoryNameAliases)

	if !idOK {
		if nameOK {
			id = name
		} else {
			id = fmt.Sprintf("%v", obj)
		}
	}
	if !nameOK {
		name = id
	}

	return &domain.Category{ID: id, Name: name}
}

// NormalizePlantSummary converts a raw plant record into the canonical
// Plant. Returns nil only for non-object input. A record missing every
// id-bearing field still gets an addressable id (name, else a random
// token) so downstream cart and detail lookups always have a key.
func NormalizePlantSummary(raw interface{}) *domain.Plant {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}

	id, _ := firstString(obj, plantIDAliases)
	name, _ := firstString(obj, plantNameAliases)
	image, _ := firstString(obj, plantImageAliases)
	category, _ := firstString(obj, plantCategoryAliases)
	desc, _ := firstString(obj, plantDescAliases)

	priceRaw, _ := firstField(obj, plantPriceAliases)

	if id == "" {
		id = name
	}
	if id == "" {
		id = uuid.NewString()
	}
	if category == "" {
		category = DefaultCategory
	}

	return &domain.Plant{
		ID:               id,
		Name:             name,
		Image:            image,
		Category:         category,
		Price:            ParsePrice(priceRaw),
		ShortDescription: Truncate(desc, DescriptionLimit),
		Raw:              obj,
	}
}

// UnwrapDetail locates the actual detail record inside one of the several
// envelope shapes the detail endpoint returns. Never fails: if no shape
// matches, the response is returned unmodified and downstream
// normalization degrades to a mostly-empty Plant.
func UnwrapDetail(resp interface{}) interface{} {
	obj, ok := resp.(map[string]interface{})
	if !ok {
		return resp
	}

	if data, ok := obj["data"].(map[string]interface{}); ok {
		if plant, ok := data["plant"].(map[string]interface{}); ok {
			return plant
		}
		if plants, ok := data["plants"].([]interface{}); ok && len(plants) > 0 {
			return plants[0]
		}
		return data
	}
	if data, ok := obj["data"]; ok && data != nil {
		return data
	}
	if plant, ok := obj["plant"]; ok && plant != nil {
		return plant
	}
	return resp
}

// ExtractList pulls the record array out of a list response, whatever the
// endpoint wrapped it in. Unknown shapes fail soft as an empty list.
func ExtractList(resp interface{}) []interface{} {
	if list, ok := resp.([]interface{}); ok {
		return list
	}
	obj, ok := resp.(map[string]interface{})
	if !ok {
		return nil
	}
	for _, key := range []string{"data", "plants", "categories"} {
		if list, ok := obj[key].([]interface{}); ok {
			return list
		}
	}
	if data, ok := obj["data"].(map[string]interface{}); ok {
		for _, key := range []string{"plants", "categories"} {
			if list, ok := data[key].([]interface{}); ok {
				return list
			}
		}
	}
	return nil
}

// MergeWithFallback fills placeholder fields of a detail-normalized Plant
// from a previously known summary record, then from fixed defaults. The
// detail endpoint is unreliable and the list view usually has better data;
// the user must never see a literal placeholder.
func MergeWithFallback(detail domain.Plant, fallback *domain.Plant) domain.Plant {
	merged := detail

	if merged.ID == "" && fallback != nil {
		merged.ID = fallback.ID
	}
	if merged.Name == "" || merged.Name == placeholderName {
		merged.Name = ""
		if fallback != nil {
			merged.Name = fallback.Name
		}
		if merged.Name == "" {
			merged.Name = DefaultCategory
		}
	}
	if merged.Image == "" && fallback != nil {
		merged.Image = fallback.Image
	}
	if merged.Category == "" || merged.Category == DefaultCategory {
		if fallback != nil && fallback.Category != "" {
			merged.Category = fallback.Category
		}
	}
	if merged.Category == "" {
		merged.Category = DefaultCategory
	}
	if merged.Price <= 0 && fallback != nil {
		merged.Price = fallback.Price
	}
	if merged.ShortDescription == "" && fallback != nil {
		merged.ShortDescription = fallback.ShortDescription
	}

	return merged
}

// NormalizeDetail unwraps and normalizes a detail response, merges it with
// the summary fallback, and collects the optional descriptive attributes.
// plantID is the id the detail was requested for; it replaces the random
// token a record with no identifier of its own would otherwise get.
func NormalizeDetail(resp interface{}, plantID string, fallback *domain.Plant) domain.PlantDetail {
	raw := UnwrapDetail(resp)

	var summary domain.Plant
	if p := NormalizePlantSummary(raw); p != nil {
		summary = *p
	}
	merged := MergeWithFallback(summary, fallback)

	if rawObj, ok := raw.(map[string]interface{}); plantID != "" && (!ok || lacksIdentity(rawObj)) {
		merged.ID = plantID
	}

	detail := domain.PlantDetail{Plant: merged}

	obj, _ := raw.(map[string]interface{})
	if full, ok := firstString(obj, fullDescriptionAliases); ok && strings.TrimSpace(full) != "" {
		detail.FullDescription = full
	} else if merged.ShortDescription != "" {
		detail.FullDescription = merged.ShortDescription
	} else {
		detail.FullDescription = DefaultDescription
	}

	detail.Sunlight = detailAttribute(obj, "sunlight")
	if w, ok := firstString(obj, wateringAliases); ok {
		detail.Watering = strings.TrimSpace(w)
	}
	detail.Origin = detailAttribute(obj, "origin")
	detail.MatureSize = detailAttribute(obj, "mature_size")
	detail.Hardiness = detailAttribute(obj, "hardiness")
	detail.Rating = detailAttribute(obj, "rating")

	return detail
}

// BackfillName repairs a plant whose normalized name is blank or the
// upstream placeholder by re-probing the raw record for a usable name,
// defaulting to the category label. Some endpoints put the placeholder
// under "name" while the real name sits under "plant_name".
func BackfillName(p *domain.Plant) {
	if p.Name != "" && p.Name != placeholderName {
		return
	}
	for _, key := range []string{"plant_name", "name", "title"} {
		if v, ok := p.Raw[key]; ok && v != nil {
			if s := stringify(v); s != "" && s != placeholderName {
				p.Name = s
				return
			}
		}
	}
	p.Name = DefaultCategory
}

// ParsePrice coerces a numeric or free-text currency value into a price.
// Text like "৳1,200.50 BDT" yields 1200.50; unparsable input yields zero,
// never a failure.
func ParsePrice(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		var b strings.Builder
		for _, r := range val {
			if (r >= '0' && r <= '9') || r == '.' {
				b.WriteRune(r)
			}
		}
		n, err := strconv.ParseFloat(b.String(), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Truncate caps text at limit runes, appending an ellipsis when cut
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}

// FormatCurrency renders an amount the way the storefront displays it
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("৳%.0f", amount)
}

// lacksIdentity reports whether a record carries no id-bearing or
// name-bearing field at all, meaning its normalized id is a random token
func lacksIdentity(obj map[string]interface{}) bool {
	if _, ok := firstField(obj, plantIDAliases); ok {
		return false
	}
	if _, ok := firstField(obj, plantNameAliases); ok {
		return false
	}
	return true
}

// firstField probes the alias list in order and returns the first present,
// non-nil value
func firstField(obj map[string]interface{}, aliases []string) (interface{}, bool) {
	for _, key := range aliases {
		if v, ok := obj[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// firstString is firstField with the value coerced to its string form
func firstString(obj map[string]interface{}, aliases []string) (string, bool) {
	v, ok := firstField(obj, aliases)
	if !ok {
		return "", false
	}
	return stringify(v), true
}

// detailAttribute reads one optional detail field, trimmed; blank means absent
func detailAttribute(obj map[string]interface{}, key string) string {
	if obj == nil {
		return ""
	}
	v, ok := obj[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(stringify(v))
}

// stringify renders a decoded JSON scalar as display text. Numbers drop
// the float artifacts json decoding introduces (7 stays "7", not "7e+00").
func stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
