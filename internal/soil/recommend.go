package soil

import (
	"fmt"
	"time"
)

// Recommendation is one agricultural action derived from the estimates.
// Immutable once built; the list order is the order the rules fired.
type Recommendation struct {
	Type           string `json:"type"`
	Category       string `json:"category"`
	Priority       string `json:"priority"`
	Severity       string `json:"severity"`
	Message        string `json:"message"`
	Action         string `json:"action"`
	Details        string `json:"details,omitempty"`
	Timeline       string `json:"timeline,omitempty"`
	Cost           string `json:"cost,omitempty"`
	Impact         string `json:"impact,omitempty"`
	SeasonalAdvice string `json:"seasonal_advice,omitempty"`
}

type ruleInput struct {
	Moisture    Moisture
	Composition Composition
	Indices     SpectralIndices
	Location    Location
	Season      season
}

// rule pairs a guard with a recommendation template. Rules are
// independent: every rule is evaluated, nothing suppresses anything,
// and matches append in declaration order. That order is a contract.
type rule struct {
	when  func(ruleInput) bool
	build func(ruleInput) Recommendation
}

var recommendationRules = []rule{
	{
		when: func(in ruleInput) bool { return in.Moisture.Percentage < 15 },
		build: func(in ruleInput) Recommendation {
			return Recommendation{
				Type:           "critical_irrigation",
				Category:       "water_management",
				Priority:       "critical",
				Severity:       "high",
				Message:        "Critical Irrigation: soil moisture is critically low and crops face imminent water stress.",
				Action:         "Begin irrigation immediately, prioritizing the most water-sensitive crops.",
				Details:        fmt.Sprintf("Estimated soil moisture is %.1f%%, below the 15%% wilting-risk threshold.", in.Moisture.Percentage),
				Timeline:       "immediate",
				Cost:           "medium",
				Impact:         "high",
				SeasonalAdvice: adviceFor("irrigation", in.Season),
			}
		},
	},
	{
		when: func(in ruleInput) bool {
			return in.Moisture.Percentage >= 15 && in.Moisture.Percentage < 30
		},
		build: func(in ruleInput) Recommendation {
			return Recommendation{
				Type:           "irrigation",
				Category:       "water_management",
				Priority:       "high",
				Severity:       "medium",
				Message:        "Soil moisture is low; supplemental irrigation is needed to avoid yield loss.",
				Action:         "Schedule irrigation within the next few days and verify application uniformity.",
				Details:        fmt.Sprintf("Estimated soil moisture is %.1f%%.", in.Moisture.Percentage),
				Timeline:       "within 1 week",
				Cost:           "medium",
				Impact:         "high",
				SeasonalAdvice: adviceFor("irrigation", in.Season),
			}
		},
	},
	{
		when: func(in ruleInput) bool { return in.Moisture.Percentage > 80 },
		build: func(in ruleInput) Recommendation {
			return Recommendation{
				Type:           "drainage",
				Category:       "water_management",
				Priority:       "medium",
				Severity:       "medium",
				Message:        "Soil is near saturation; waterlogging can suffocate roots and favor root disease.",
				Action:         "Check drainage outlets and hold off on further irrigation.",
				Details:        fmt.Sprintf("Estimated soil moisture is %.1f%%.", in.Moisture.Percentage),
				Timeline:       "within 2 weeks",
				Cost:           "low",
				Impact:         "medium",
				SeasonalAdvice: adviceFor("drainage", in.Season),
			}
		},
	},
	{
		when: func(in ruleInput) bool {
			return in.Indices.NDVI > 0.7 && in.Indices.NDMI < 0.3
		},
		build: func(in ruleInput) Recommendation {
			return Recommendation{
				Type:           "water_stress_despite_cover",
				Category:       "precision_agriculture",
				Priority:       "high",
				Severity:       "medium",
				Message:        "Dense canopy with a weak moisture signal: the crop looks healthy but is drawing down soil water.",
				Action:         "Ground-truth with soil probes and consider variable-rate irrigation before stress becomes visible.",
				Details:        fmt.Sprintf("NDVI %.3f with NDMI %.3f.", in.Indices.NDVI, in.Indices.NDMI),
				Timeline:       "within 1 week",
				Cost:           "medium",
				Impact:         "high",
				SeasonalAdvice: adviceFor("irrigation", in.Season),
			}
		},
	},
	{
		when: func(in ruleInput) bool { return in.Indices.NDVI < 0.2 },
		build: func(in ruleInput) Recommendation {
			return Recommendation{
				Type:           "vegetation_establishment",
				Category:       "vegetation",
				Priority:       "high",
				Severity:       "medium",
				Message:        "Vegetation cover is sparse; bare ground loses moisture and topsoil quickly.",
				Action:         "Establish crop or cover vegetation as soon as the planting window allows.",
				Details:        fmt.Sprintf("NDVI is %.3f, below the 0.2 sparse-cover threshold.", in.Indices.NDVI),
				Timeline:       "next planting window",
				Cost:           "medium",
				Impact:         "high",
				SeasonalAdvice: adviceFor("planting", in.Season),
			}
		},
	},
	{
		when: func(in ruleInput) bool { return in.Indices.BSI > 0.3 },
		build: func(in ruleInput) Recommendation {
			return Recommendation{
				Type:           "erosion_control",
				Category:       "soil_structure",
				Priority:       "high",
				Severity:       "high",
				Message:        "High bare-soil exposure leaves the field open to wind and water erosion.",
				Action:         "Protect the surface with cover crops, residue retention or mulch.",
				Details:        fmt.Sprintf("BSI is %.3f.", in.Indices.BSI),
				Timeline:       "within 1 month",
				Cost:           "low",
				Impact:         "high",
				SeasonalAdvice: adviceFor("cover_cropping", in.Season),
			}
		},
	},
	{
		when: func(in ruleInput) bool { return in.Composition.OrganicMatter < 2 },
		build: func(in ruleInput) Recommendation {
			return Recommendation{
				Type:           "organic_amendment",
				Category:       "fertility",
				Priority:       "high",
				Severity:       "medium",
				Message:        "Organic matter is very low, limiting water holding and nutrient cycling.",
				Action:         "Apply compost or manure and keep residues on the field.",
				Details:        fmt.Sprintf("Estimated organic matter is %.1f%%.", in.Composition.OrganicMatter),
				Timeline:       "before next season",
				Cost:           "medium",
				Impact:         "high",
				SeasonalAdvice: adviceFor("composting", in.Season),
			}
		},
	},
	{
		when: func(in ruleInput) bool { return in.Composition.Fertility.Score < 50 },
		build: func(in ruleInput) Recommendation {
			return Recommendation{
				Type:           "fertilization",
				Category:       "fertility",
				Priority:       "medium",
				Severity:       "medium",
				Message:        "Overall fertility is low; yields will respond to a balanced nutrient program.",
				Action:         "Soil-test and apply a balanced fertilizer matched to the planned crop.",
				Details:        fmt.Sprintf("Fertility score is %.1f/100 (%s).", in.Composition.Fertility.Score, in.Composition.Fertility.Level),
				Timeline:       "within 1 month",
				Cost:           "medium",
				Impact:         "high",
				SeasonalAdvice: adviceFor("fertilization", in.Season),
			}
		},
	},
	{
		when: func(in ruleInput) bool { return in.Composition.PH < 5.5 },
		build: func(in ruleInput) Recommendation {
			return Recommendation{
				Type:           "liming",
				Category:       "ph_management",
				Priority:       "high",
				Severity:       "medium",
				Message:        "Soil is strongly acidic; phosphorus lock-up and aluminum toxicity are likely.",
				Action:         "Apply agricultural lime per a soil-test rate to raise pH toward 6.5.",
				Details:        fmt.Sprintf("Estimated pH is %.1f.", in.Composition.PH),
				Timeline:       "before next season",
				Cost:           "medium",
				Impact:         "high",
				SeasonalAdvice: adviceFor("liming", in.Season),
			}
		},
	},
	{
		when: func(in ruleInput) bool { return in.Composition.PH > 8.0 },
		build: func(in ruleInput) Recommendation {
			return Recommendation{
				Type:           "acidification",
				Category:       "ph_management",
				Priority:       "medium",
				Severity:       "medium",
				Message:        "Soil is alkaline; micronutrients such as iron and zinc become poorly available.",
				Action:         "Apply elemental sulfur or acidifying amendments and prefer chelated micronutrients.",
				Details:        fmt.Sprintf("Estimated pH is %.1f.", in.Composition.PH),
				Timeline:       "before next season",
				Cost:           "medium",
				Impact:         "medium",
				SeasonalAdvice: adviceFor("sulfur", in.Season),
			}
		},
	},
	{
		when: func(in ruleInput) bool {
			return in.Composition.Clay > 40 && in.Moisture.Percentage > 60
		},
		build: func(in ruleInput) Recommendation {
			return Recommendation{
				Type:           "compaction_relief",
				Category:       "soil_structure",
				Priority:       "medium",
				Severity:       "medium",
				Message:        "Wet, clay-heavy soil compacts under traffic and drains poorly.",
				Action:         "Keep machinery off until the profile drains, then aerate or subsoil compacted zones.",
				Details:        fmt.Sprintf("Clay fraction %.1f%% at %.1f%% moisture.", in.Composition.Clay, in.Moisture.Percentage),
				Timeline:       "when field is workable",
				Cost:           "medium",
				Impact:         "medium",
				SeasonalAdvice: adviceFor("aeration", in.Season),
			}
		},
	},
	{
		when: func(in ruleInput) bool {
			return in.Composition.Sand > 60 && in.Moisture.Percentage < 30
		},
		build: func(in ruleInput) Recommendation {
			return Recommendation{
				Type:           "water_retention",
				Category:       "soil_structure",
				Priority:       "medium",
				Severity:       "medium",
				Message:        "Sandy, dry soil sheds water fast; improving retention beats irrigating harder.",
				Action:         "Mulch the surface and build organic matter to raise water holding capacity.",
				Details:        fmt.Sprintf("Sand fraction %.1f%% at %.1f%% moisture.", in.Composition.Sand, in.Moisture.Percentage),
				Timeline:       "within 1 month",
				Cost:           "low",
				Impact:         "medium",
				SeasonalAdvice: adviceFor("mulching", in.Season),
			}
		},
	},
	{
		when: func(in ruleInput) bool {
			return in.Composition.OrganicMatter < 3 && in.Indices.BSI > 0.2
		},
		build: func(in ruleInput) Recommendation {
			return Recommendation{
				Type:           "soil_biology",
				Category:       "soil_biology",
				Priority:       "medium",
				Severity:       "medium",
				Message:        "Exposed soil with little organic matter supports a weak soil food web and erodes easily.",
				Action:         "Sow a multi-species cover crop and minimize tillage to rebuild biological activity.",
				Details:        fmt.Sprintf("Organic matter %.1f%% with BSI %.3f.", in.Composition.OrganicMatter, in.Indices.BSI),
				Timeline:       "next planting window",
				Cost:           "low",
				Impact:         "high",
				SeasonalAdvice: adviceFor("cover_cropping", in.Season),
			}
		},
	},
	{
		when: func(in ruleInput) bool { return true },
		build: func(in ruleInput) Recommendation {
			return Recommendation{
				Type:           "crop_suitability",
				Category:       "crop_suitability",
				Priority:       "low",
				Severity:       "low",
				Message:        fmt.Sprintf("%s soil detected: %s", in.Composition.SoilType, cropSuggestions[in.Composition.SoilType]),
				Action:         "Match the next rotation to the soil's texture and pH before committing seed.",
				Details:        fmt.Sprintf("Soil type %s at pH %.1f.", in.Composition.SoilType, in.Composition.PH),
				Timeline:       "next planning cycle",
				Cost:           "low",
				Impact:         "medium",
				SeasonalAdvice: adviceFor("planting", in.Season),
			}
		},
	},
	{
		when: func(in ruleInput) bool {
			return in.Composition.OrganicMatter > 4 && in.Indices.NDVI > 0.5
		},
		build: func(in ruleInput) Recommendation {
			return Recommendation{
				Type:           "carbon_sequestration",
				Category:       "sustainability",
				Priority:       "low",
				Severity:       "low",
				Message:        "Healthy cover over organic-rich soil is a carbon sequestration opportunity.",
				Action:         "Maintain reduced tillage and continuous cover; consider enrolling in a carbon program.",
				Details:        fmt.Sprintf("Organic matter %.1f%% with NDVI %.3f.", in.Composition.OrganicMatter, in.Indices.NDVI),
				Timeline:       "ongoing",
				Cost:           "low",
				Impact:         "medium",
				SeasonalAdvice: adviceFor("cover_cropping", in.Season),
			}
		},
	},
	{
		when: func(in ruleInput) bool {
			return in.Composition.Fertility.Level == "high" && in.Moisture.Level == MoistureModerate
		},
		build: func(in ruleInput) Recommendation {
			return Recommendation{
				Type:           "biodiversity",
				Category:       "sustainability",
				Priority:       "low",
				Severity:       "low",
				Message:        "Fertile, well-watered ground can spare margins for biodiversity without yield cost.",
				Action:         "Establish flowering field margins or beetle banks on headlands.",
				Timeline:       "next planning cycle",
				Cost:           "low",
				Impact:         "medium",
				SeasonalAdvice: adviceFor("planting", in.Season),
			}
		},
	},
}

var cropSuggestions = map[string]string{
	"Clay":       "suited to paddy rice, wheat and brassicas that tolerate heavy ground.",
	"Sand":       "suited to root vegetables, asparagus and early-season crops.",
	"Silt":       "suited to most vegetables and small grains given drainage care.",
	"Clay Loam":  "suited to maize, soybeans and most cereals.",
	"Sandy Loam": "suited to potatoes, carrots, legumes and market-garden crops.",
	"Loam":       "suited to virtually all regional crops; rotate freely.",
}

// GenerateRecommendations evaluates every rule against the estimates
// and returns all matches in declaration order. Deterministic: same
// inputs, same list.
func GenerateRecommendations(moisture Moisture, composition Composition, indices SpectralIndices, loc Location, now time.Time) []Recommendation {
	in := ruleInput{
		Moisture:    moisture,
		Composition: composition,
		Indices:     indices,
		Location:    loc,
		Season:      seasonOf(now),
	}

	recs := make([]Recommendation, 0, len(recommendationRules))
	for _, r := range recommendationRules {
		if r.when(in) {
			recs = append(recs, r.build(in))
		}
	}
	return recs
}
