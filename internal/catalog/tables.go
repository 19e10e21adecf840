package catalog

// Static reference tables. These are the tunable policy of the
// recommendation engine: base price bands per industry and use case,
// the industry taxonomy shown to users, and the fixed phrase tables
// the specification generator draws from.

// industryUseCases maps each industry to its use cases, in display order
var industryUseCases = map[string][]string{
	"manufacturing": {"外観検査自動化", "需要予測・生産計画", "設備の予知保全", "作業手順のデジタル化"},
	"retail":        {"需要予測・自動発注", "接客チャットボット", "売上分析・ダッシュボード", "店舗内行動分析"},
	"logistics":     {"配送ルート最適化", "倉庫内ピッキング最適化", "輸送需要予測", "伝票処理の自動化"},
	"healthcare":    {"問診支援", "画像診断支援", "予約最適化", "書類作成支援"},
	"finance":       {"与信審査支援", "不正検知", "書類審査の自動化", "顧客対応チャットボット"},
	"construction":  {"施工進捗管理", "安全監視", "図面チェック支援", "見積作成支援"},
	"agriculture":   {"生育状況モニタリング", "収穫量予測", "選果自動化", "圃場管理支援"},
	"other":         {"業務自動化", "データ分析基盤構築", "チャットボット導入"},
}

// industryOrder fixes the display order of industries
var industryOrder = []string{
	"manufacturing", "retail", "logistics", "healthcare",
	"finance", "construction", "agriculture", "other",
}

// industryLabels holds English display names used in generated documents
var industryLabels = map[string]string{
	"manufacturing": "Manufacturing",
	"retail":        "Retail",
	"logistics":     "Logistics",
	"healthcare":    "Healthcare",
	"finance":       "Finance",
	"construction":  "Construction",
	"agriculture":   "Agriculture",
	"other":         "General business",
}

// relatedIndustries lists industries close enough that a vendor's
// experience partially transfers
var relatedIndustries = map[string][]string{
	"manufacturing": {"logistics", "construction"},
	"retail":        {"logistics"},
	"logistics":     {"manufacturing", "retail"},
	"construction":  {"manufacturing"},
	"agriculture":   {"manufacturing"},
}

// defaultBaseRange applies when neither the (industry, use case) pair
// nor the industry alone is known
var defaultBaseRange = PriceRange{Min: 3_000_000, Max: 10_000_000}

// industryBaseRanges holds the fallback band per industry
var industryBaseRanges = map[string]PriceRange{
	"manufacturing": {Min: 3_000_000, Max: 12_000_000},
	"retail":        {Min: 2_000_000, Max: 8_000_000},
	"logistics":     {Min: 2_500_000, Max: 10_000_000},
	"healthcare":    {Min: 4_000_000, Max: 15_000_000},
	"finance":       {Min: 5_000_000, Max: 18_000_000},
	"construction":  {Min: 3_000_000, Max: 10_000_000},
	"agriculture":   {Min: 2_000_000, Max: 7_000_000},
	"other":         {Min: 2_000_000, Max: 8_000_000},
}

type industryUseCase struct {
	Industry string
	UseCase  string
}

// pairBaseRanges holds the band per (industry, use case) pair
var pairBaseRanges = map[industryUseCase]PriceRange{
	{"manufacturing", "外観検査自動化"}:    {Min: 3_000_000, Max: 9_000_000},
	{"manufacturing", "需要予測・生産計画"}:  {Min: 4_000_000, Max: 12_000_000},
	{"manufacturing", "設備の予知保全"}:    {Min: 5_000_000, Max: 15_000_000},
	{"manufacturing", "作業手順のデジタル化"}: {Min: 2_000_000, Max: 6_000_000},
	{"retail", "需要予測・自動発注"}:        {Min: 3_000_000, Max: 9_000_000},
	{"retail", "接客チャットボット"}:        {Min: 1_500_000, Max: 5_000_000},
	{"retail", "売上分析・ダッシュボード"}:     {Min: 2_000_000, Max: 6_000_000},
	{"retail", "店舗内行動分析"}:          {Min: 3_000_000, Max: 8_000_000},
	{"logistics", "配送ルート最適化"}:      {Min: 4_000_000, Max: 12_000_000},
	{"logistics", "倉庫内ピッキング最適化"}:   {Min: 4_000_000, Max: 11_000_000},
	{"logistics", "輸送需要予測"}:        {Min: 3_000_000, Max: 9_000_000},
	{"logistics", "伝票処理の自動化"}:      {Min: 1_500_000, Max: 5_000_000},
	{"healthcare", "問診支援"}:         {Min: 4_000_000, Max: 12_000_000},
	{"healthcare", "画像診断支援"}:       {Min: 6_000_000, Max: 18_000_000},
	{"healthcare", "予約最適化"}:        {Min: 2_000_000, Max: 6_000_000},
	{"healthcare", "書類作成支援"}:       {Min: 2_000_000, Max: 6_000_000},
	{"finance", "与信審査支援"}:         {Min: 6_000_000, Max: 18_000_000},
	{"finance", "不正検知"}:           {Min: 7_000_000, Max: 20_000_000},
	{"finance", "書類審査の自動化"}:       {Min: 3_000_000, Max: 9_000_000},
	{"finance", "顧客対応チャットボット"}:    {Min: 2_000_000, Max: 7_000_000},
	{"construction", "施工進捗管理"}:     {Min: 3_000_000, Max: 9_000_000},
	{"construction", "安全監視"}:       {Min: 4_000_000, Max: 11_000_000},
	{"construction", "図面チェック支援"}:   {Min: 3_000_000, Max: 8_000_000},
	{"construction", "見積作成支援"}:     {Min: 2_000_000, Max: 6_000_000},
	{"agriculture", "生育状況モニタリング"}:  {Min: 3_000_000, Max: 8_000_000},
	{"agriculture", "収穫量予測"}:       {Min: 2_500_000, Max: 7_000_000},
	{"agriculture", "選果自動化"}:       {Min: 4_000_000, Max: 10_000_000},
	{"agriculture", "圃場管理支援"}:      {Min: 2_000_000, Max: 6_000_000},
	{"other", "業務自動化"}:           {Min: 2_000_000, Max: 7_000_000},
	{"other", "データ分析基盤構築"}:       {Min: 3_000_000, Max: 10_000_000},
	{"other", "チャットボット導入"}:       {Min: 1_500_000, Max: 5_000_000},
}

// painPointOrder fixes the canonical ordering of pain-point codes.
// Generated documents follow this order regardless of selection order.
var painPointOrder = []string{
	"quality", "speed", "cost", "labor", "accuracy", "forecast", "visibility",
}

// painPointPhrases maps a pain-point code to the issue sentence and
// goal sentence used in generated specifications
var painPointPhrases = map[string]struct{ Issue, Goal string }{
	"quality":    {"Product quality varies with operator skill and inspection results are inconsistent.", "Stabilize quality through automated, criteria-based inspection."},
	"speed":      {"Manual steps create long lead times in day-to-day operations.", "Shorten lead times by automating repetitive work."},
	"cost":       {"Operating costs remain high relative to output.", "Reduce operating costs through targeted automation."},
	"labor":      {"The work depends on a small number of experienced staff and is hard to hand over.", "Reduce dependence on individual expertise and ease the staffing load."},
	"accuracy":   {"Manual judgment and data entry produce recurring mistakes.", "Cut error rates with machine-assisted checks."},
	"forecast":   {"Demand and volume are difficult to predict, causing overstock and shortages.", "Improve planning accuracy with data-driven forecasting."},
	"visibility": {"Current conditions on site are hard to see in a timely way.", "Make operational status visible in near real time."},
}

// existingSystemOrder fixes the canonical ordering of system codes
var existingSystemOrder = []string{"erp", "mes", "crm", "pos", "excel", "paper"}

// existingSystemPhrases maps a system code to its requirement
// sentence; codes without an entry (e.g. "none") add nothing
var existingSystemPhrases = map[string]string{
	"erp":   "Integration with the existing ERP system is required.",
	"mes":   "Integration with the existing MES is required.",
	"crm":   "Integration with the existing CRM is required.",
	"pos":   "Integration with the existing POS / sales management system is required.",
	"excel": "Current records are kept in Excel; import of existing spreadsheets is required.",
	"paper": "Current records are kept on paper; a digitization step is required.",
}

// dataAvailabilityPhrases maps a data-availability tier to the data
// requirements sentence. The empty tier (unanswered) reads as unknown.
var dataAvailabilityPhrases = map[string]string{
	"yes_digital": "Digitized historical data is available and can be used for development from the start.",
	"yes_paper":   "Records exist on paper; digitization will be needed before model development.",
	"no":          "No usable historical data exists; the project must begin with a data-collection phase.",
	"unknown":     "Data availability is unconfirmed; an initial data assessment is required.",
	"":            "Data availability is unconfirmed; an initial data assessment is required.",
}

// timelineLabels maps a timeline tier to its document label
var timelineLabels = map[string]string{
	"asap":    "As soon as possible",
	"3months": "Within 3 months",
	"6months": "Within 6 months",
	"1year":   "Within a year",
}

// TimelineUnset is the label used when no timeline was given
const TimelineUnset = "To be determined"
