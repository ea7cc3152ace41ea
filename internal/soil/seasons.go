package soil

import "time"

type season string

const (
	seasonSpring season = "spring"
	seasonSummer season = "summer"
	seasonFall   season = "fall"
	seasonWinter season = "winter"
)

// seasonOf uses Northern-Hemisphere quarter boundaries regardless of
// latitude sign. Southern-Hemisphere advice comes out shifted by half a
// year; kept as-is until the intended behavior is settled.
func seasonOf(t time.Time) season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return seasonSpring
	case time.June, time.July, time.August:
		return seasonSummer
	case time.September, time.October, time.November:
		return seasonFall
	default:
		return seasonWinter
	}
}

// seasonalAdvice maps an agronomic practice to per-season guidance.
var seasonalAdvice = map[string]map[season]string{
	"irrigation": {
		seasonSpring: "Irrigate in the morning; rising temperatures increase evaporation later in the day.",
		seasonSummer: "Irrigate early morning or late evening and increase frequency during heat waves.",
		seasonFall:   "Taper irrigation as evapotranspiration drops; avoid saturating before dormancy.",
		seasonWinter: "Irrigate sparingly; most crops are dormant and demand is minimal.",
	},
	"drainage": {
		seasonSpring: "Clear drainage channels before spring rains peak.",
		seasonSummer: "Inspect and repair drainage infrastructure while soils are workable.",
		seasonFall:   "Prepare drains for winter precipitation; remove debris from outlets.",
		seasonWinter: "Monitor standing water after storms and pump out low spots.",
	},
	"fertilization": {
		seasonSpring: "Apply the main nutrient dressing ahead of the growth flush.",
		seasonSummer: "Use split applications; hot weather increases volatilization losses.",
		seasonFall:   "Favor slow-release formulations that carry into the next season.",
		seasonWinter: "Hold off on soluble fertilizers; uptake is minimal and leaching risk high.",
	},
	"composting": {
		seasonSpring: "Incorporate finished compost before planting.",
		seasonSummer: "Surface-apply compost as mulch to feed soil while conserving moisture.",
		seasonFall:   "Spread compost after harvest so winter moisture works it in.",
		seasonWinter: "Stockpile and turn compost; apply once soils are workable.",
	},
	"liming": {
		seasonSpring: "Apply lime early so it reacts before peak nutrient demand.",
		seasonSummer: "Lime after harvest of early crops; water in if no rain is expected.",
		seasonFall:   "Fall is ideal for liming; winter moisture moves it into the profile.",
		seasonWinter: "Apply to frozen ground only on level fields to avoid runoff.",
	},
	"sulfur": {
		seasonSpring: "Apply elemental sulfur early; oxidation to sulfate takes weeks.",
		seasonSummer: "Warm soils speed sulfur oxidation; water in after application.",
		seasonFall:   "Fall application gives sulfur time to acidify before spring planting.",
		seasonWinter: "Cold soils oxidize sulfur slowly; postpone unless pH is urgent.",
	},
	"cover_cropping": {
		seasonSpring: "Terminate winter covers two to three weeks before cash-crop planting.",
		seasonSummer: "Sow fast summer covers such as buckwheat on fallow ground.",
		seasonFall:   "Drill winter covers immediately after harvest to catch residual nitrogen.",
		seasonWinter: "Leave covers standing; living roots protect soil through winter.",
	},
	"mulching": {
		seasonSpring: "Mulch after the soil warms to avoid delaying early growth.",
		seasonSummer: "A thick mulch layer cuts evaporation sharply in peak heat.",
		seasonFall:   "Mulch perennials before first frost to buffer soil temperature.",
		seasonWinter: "Maintain mulch cover to limit freeze-thaw erosion.",
	},
	"aeration": {
		seasonSpring: "Aerate once the profile has drained; working wet clay smears pores.",
		seasonSummer: "Avoid deep tillage in dry heat; subsoil only if compaction is confirmed.",
		seasonFall:   "Fall subsoiling lets winter freeze-thaw mellow the loosened ground.",
		seasonWinter: "Keep machinery off saturated fields to prevent new compaction.",
	},
	"planting": {
		seasonSpring: "Prime planting window for most annual crops.",
		seasonSummer: "Choose heat-tolerant, short-cycle varieties for late sowing.",
		seasonFall:   "Plant overwintering grains and establish perennials.",
		seasonWinter: "Plan rotations and order seed; field planting waits for spring.",
	},
}

func adviceFor(practice string, s season) string {
	if bySeason, ok := seasonalAdvice[practice]; ok {
		return bySeason[s]
	}
	return ""
}
