// Package product holds the static product catalog and prompt formatting.
// Live scraping is an unbuilt collaborator; every lookup is served from the
// pre-collected table.
package product

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Record is the full data set collected for one product.
type Record struct {
	Name        string            `json:"name"`
	Brand       string            `json:"brand"`
	Price       float64           `json:"price"`
	Currency    string            `json:"currency"`
	Rating      float64           `json:"rating"`
	ReviewCount int               `json:"review_count"`
	ASIN        string            `json:"asin"`
	URL         string            `json:"url"`
	Images      []string          `json:"images"`
	Features    []string          `json:"features"`
	Pros        []string          `json:"pros"`
	Cons        []string          `json:"cons"`
	Description string            `json:"description"`
	Specs       map[string]string `json:"specs"`
}

// JSON renders the record as indented JSON.
func (r Record) JSON() string {
	data, _ := json.MarshalIndent(r, "", "  ")
	return string(data)
}

const DefaultID = "owala_freesip"

var catalog = map[string]Record{
	DefaultID: owalaFreeSip24oz,
}

// Lookup returns the record for the given id. Unknown ids fall back to the
// default record; lookups never fail.
func Lookup(id string) Record {
	if record, ok := catalog[id]; ok {
		return record
	}
	return catalog[DefaultID]
}

// IDs returns the known product identifiers, sorted.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FormatForScript renders a record as the product-info block embedded in the
// script generation prompt.
func FormatForScript(r Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nמוצר: %s\n", r.Name)
	fmt.Fprintf(&b, "מותג: %s\n", r.Brand)
	fmt.Fprintf(&b, "מחיר: $%.2f\n", r.Price)
	fmt.Fprintf(&b, "דירוג: %.1f/5 (%d ביקורות)\n", r.Rating, r.ReviewCount)

	fmt.Fprintf(&b, "\nתיאור:\n%s\n", r.Description)

	b.WriteString("\nתכונות עיקריות:\n")
	for _, f := range r.Features {
		fmt.Fprintf(&b, "• %s\n", f)
	}

	b.WriteString("\nיתרונות:\n")
	for _, p := range r.Pros {
		fmt.Fprintf(&b, "✓ %s\n", p)
	}

	b.WriteString("\nחסרונות:\n")
	for _, c := range r.Cons {
		fmt.Fprintf(&b, "✗ %s\n", c)
	}

	b.WriteString("\nמפרט טכני:\n")
	for _, k := range sortedKeys(r.Specs) {
		fmt.Fprintf(&b, "• %s: %s\n", k, r.Specs[k])
	}

	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var owalaFreeSip24oz = Record{
	Name:        "Owala FreeSip Insulated Stainless Steel Water Bottle",
	Brand:       "Owala",
	Price:       27.99,
	Currency:    "USD",
	Rating:      4.8,
	ReviewCount: 150000,
	ASIN:        "B085DTZQNZ",
	URL:         "https://www.amazon.com/dp/B085DTZQNZ",
	Images: []string{
		"https://m.media-amazon.com/images/I/61JUu5tn8GL._AC_SL1500_.jpg",
		"https://m.media-amazon.com/images/I/71wqmxNiAML._AC_SL1500_.jpg",
		"https://m.media-amazon.com/images/I/71PjcvBRr5L._AC_SL1500_.jpg",
	},
	Features: []string{
		"פטנט FreeSip - שתייה דרך קש או גמיעה ישירה",
		"בידוד דו-שכבתי - שומר קור עד 24 שעות",
		"מכסה עם נעילה כפולה - אטום לחלוטין",
		"ידית נשיאה נוחה שמשמשת גם כמנעול",
		"פתח רחב לניקוי קל והכנסת קרח",
		"מתאים למתקן כוסות ברכב (24oz)",
		"ללא BPA, עופרת, ופתלטים",
		"מכסה בטוח למדיח כלים",
	},
	Pros: []string{
		"עיצוב ייחודי - אפשר לשתות מקש או ישירות בלי לפתוח מכסה",
		"אטימות מושלמת - אפשר לזרוק לתיק בלי דאגה",
		"שומר קר מעולה - קרח נשאר יותר מיום שלם",
		"ויראלי בטיקטוק - 272 מיליון צפיות בהאשטאג",
		"מגוון צבעים ועיצובים מטורפים",
		"קש מוסתר ומוגן מחיידקים",
		"נוח לאחיזה - יש שקעים בגוף הבקבוק",
		"מחיר סביר ביחס למתחרים (Hydro Flask, Stanley)",
		"אחריות לכל החיים מהיצרן",
	},
	Cons: []string{
		"לא מתאים למשקאות חמים או מוגזים",
		"הגרסאות הגדולות (32oz, 40oz) לא נכנסות למתקן כוסות",
		"צריך לנקות לעיתים קרובות - עלול להצטבר עובש בחלקי הסיליקון",
		"קצת כבד בהשוואה לבקבוקי פלסטיק",
		"המכסה נפתח בכוח - צריך להיזהר שלא לפגוע בעצמך",
		"הציפוי עלול להישחק עם הזמן",
		"הדפסים לא עמידים למדיח כלים",
	},
	Description: `בקבוק המים Owala FreeSip הוא אחד המוצרים הויראליים ביותר בטיקטוק,
עם למעלה מ-272 מיליון צפיות בהאשטאג #owala.

מה שמייחד אותו מכל בקבוק אחר הוא הפטנט הייחודי FreeSip -
פתח כפול שמאפשר לשתות גם דרך קש מובנה וגם לגמוע ישירות,
בלי צורך לפתוח או להחליף מכסים.

הבקבוק עשוי מנירוסטה עם בידוד דו-שכבתי שאמור לשמור על המשקאות
קרים עד 24 שעות. במבחנים שנעשו, הבקבוק אכן עמד בהבטחה הזו.

זמין בשלושה גדלים: 24oz, 32oz, ו-40oz, ובמגוון צבעים מטורף
עם שמות יצירתיים כמו "Shy Marshmallow", "Smooshed Blueberry",
ו-"Very Very Dark".`,
	Specs: map[string]string{
		"נפח":       "24 אונקיות (710 מ\"ל)",
		"גובה":      "10.26 אינץ' (26 ס\"מ)",
		"קוטר":      "3.12 אינץ' (7.9 ס\"מ)",
		"משקל":      "כ-400 גרם",
		"חומר":      "נירוסטה 18/8 + פלסטיק ללא BPA",
		"בידוד":     "דו-שכבתי (Double-wall)",
		"שמירת קור": "עד 24 שעות",
		"מדיח כלים": "מכסה בלבד",
		"אחריות":    "לכל החיים",
	},
}
