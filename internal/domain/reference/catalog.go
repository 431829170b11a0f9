package reference

// Default returns a registry built from the built-in catalog. The catalog is
// the standard adult panel set: CBC, basic metabolic/chemistry, lipids,
// electrolytes, diabetes and thyroid markers, iron studies, inflammatory
// markers, common vitamins, and coagulation.
func Default() *Registry {
	r, err := NewRegistry(builtinCatalog())
	if err != nil {
		// The builtin catalog is validated by tests; a constructor error
		// here is a programming bug, not a runtime condition.
		panic(err)
	}
	return r
}

func builtinCatalog() []Analyte {
	return []Analyte{
		// Complete blood count
		{
			Key: "WBC", Display: "White Blood Cell Count", Unit: "10^3/µL",
			Low: f(4.5), High: f(11.0),
			PlausibleLow: f(0.1), PlausibleHigh: f(100),
			Aliases: []string{"white blood cell", "leukocyte", "white cell", "white blood cell count", "leukocyte count", "wbc count"},
		},
		{
			Key: "RBC", Display: "Red Blood Cell Count", Unit: "10^6/µL",
			Low: f(4.5), High: f(5.9),
			PlausibleLow: f(0.5), PlausibleHigh: f(10),
			Aliases: []string{"red blood cell", "erythrocyte", "red cell", "red blood cell count", "erythrocyte count"},
		},
		{
			Key: "HGB", Display: "Hemoglobin", Unit: "g/dL",
			Low: f(13.5), High: f(17.5),
			PlausibleLow: f(1), PlausibleHigh: f(25),
			Aliases:     []string{"hemoglobin", "haemoglobin", "hb", "hemoglobin concentration"},
			Conversions: map[string]float64{"g/l": 0.1, "mg/dl": 0.001},
		},
		{
			Key: "HCT", Display: "Hematocrit", Unit: "%",
			Low: f(41.0), High: f(50.0),
			Aliases: []string{"hematocrit", "haematocrit", "packed cell volume", "pcv", "crit"},
		},
		{
			Key: "MCV", Display: "Mean Corpuscular Volume", Unit: "fL",
			Low: f(80.0), High: f(100.0),
			Aliases: []string{"mean corpuscular volume", "mean cell volume", "mean erythrocyte volume"},
		},
		{
			Key: "MCH", Display: "Mean Corpuscular Hemoglobin", Unit: "pg",
			Low: f(27.0), High: f(33.0),
			Aliases: []string{"mean corpuscular hemoglobin", "mean cell hemoglobin"},
		},
		{
			Key: "MCHC", Display: "Mean Corpuscular Hemoglobin Concentration", Unit: "g/dL",
			Low: f(32.0), High: f(36.0),
			Aliases: []string{"mean corpuscular hemoglobin concentration", "mean cell hemoglobin concentration"},
		},
		{
			Key: "PLT", Display: "Platelet Count", Unit: "10^3/µL",
			Low: f(150), High: f(450),
			PlausibleLow: f(1), PlausibleHigh: f(1000),
			Aliases: []string{"platelet", "platelets", "thrombocyte", "platelet count", "thrombocyte count"},
		},
		{
			Key: "RDW", Display: "Red Cell Distribution Width", Unit: "%",
			Low: f(11.5), High: f(14.5),
			Aliases: []string{"red cell distribution width", "rdw-cv", "rdw-sd"},
		},
		{
			Key: "NEUT", Display: "Neutrophils", Unit: "%",
			Low: f(40), High: f(70),
			Aliases: []string{"neutrophil", "neutrophils", "neutrophil count", "segmented neutrophils", "segs", "polys"},
		},
		{
			Key: "LYMPH", Display: "Lymphocytes", Unit: "%",
			Low: f(20), High: f(40),
			Aliases: []string{"lymphocyte", "lymphocytes", "lymphocyte count", "lymphs"},
		},
		{
			Key: "MONO", Display: "Monocytes", Unit: "%",
			Low: f(2), High: f(10),
			Aliases: []string{"monocyte", "monocytes", "monocyte count", "monos"},
		},
		{
			Key: "EOS", Display: "Eosinophils", Unit: "%",
			Low: f(1), High: f(6),
			Aliases: []string{"eosinophil", "eosinophils", "eosinophil count"},
		},
		{
			Key: "BASO", Display: "Basophils", Unit: "%",
			Low: f(0.5), High: f(1),
			Aliases: []string{"basophil", "basophils", "basophil count"},
		},

		// Chemistry panel
		{
			Key: "GLUC", Display: "Glucose", Unit: "mg/dL",
			Low: f(70), High: f(99),
			PlausibleLow: f(10), PlausibleHigh: f(600),
			Aliases:     []string{"glucose", "blood sugar", "fasting glucose", "blood glucose", "plasma glucose", "fasting blood sugar", "fbs", "sugar"},
			Conversions: map[string]float64{"mmol/l": 18.0182},
		},
		{
			Key: "BUN", Display: "Blood Urea Nitrogen", Unit: "mg/dL",
			Low: f(7), High: f(20),
			Aliases:     []string{"blood urea nitrogen", "urea nitrogen", "urea"},
			Conversions: map[string]float64{"mmol/l": 2.801},
		},
		{
			Key: "CREA", Display: "Creatinine", Unit: "mg/dL",
			Low: f(0.6), High: f(1.2),
			Aliases:     []string{"creatinine", "creat", "serum creatinine"},
			Conversions: map[string]float64{"umol/l": 0.0113},
		},
		{
			Key: "ALT", Display: "Alanine Aminotransferase", Unit: "U/L",
			Low: f(7), High: f(56),
			Aliases: []string{"alanine aminotransferase", "alanine transaminase", "sgpt", "alat"},
		},
		{
			Key: "AST", Display: "Aspartate Aminotransferase", Unit: "U/L",
			Low: f(10), High: f(40),
			Aliases: []string{"aspartate aminotransferase", "aspartate transaminase", "sgot", "asat"},
		},
		{
			Key: "ALP", Display: "Alkaline Phosphatase", Unit: "U/L",
			Low: f(44), High: f(147),
			Aliases: []string{"alkaline phosphatase", "alkphos"},
		},
		{
			Key: "TBIL", Display: "Total Bilirubin", Unit: "mg/dL",
			Low: f(0.1), High: f(1.2),
			Aliases:     []string{"total bilirubin", "bilirubin total", "total serum bilirubin"},
			Conversions: map[string]float64{"umol/l": 0.0585},
		},
		{
			Key: "ALB", Display: "Albumin", Unit: "g/dL",
			Low: f(3.4), High: f(5.4),
			Aliases:     []string{"albumin", "serum albumin"},
			Conversions: map[string]float64{"g/l": 0.1},
		},
		{
			Key: "TP", Display: "Total Protein", Unit: "g/dL",
			Low: f(6.0), High: f(8.3),
			Aliases:     []string{"total protein", "protein total", "total serum protein"},
			Conversions: map[string]float64{"g/l": 0.1},
		},

		// Lipid panel
		{
			Key: "CHOL", Display: "Total Cholesterol", Unit: "mg/dL",
			Low: f(0), High: f(200),
			PlausibleLow: f(50), PlausibleHigh: f(600),
			Aliases:     []string{"cholesterol", "total cholesterol", "serum cholesterol", "tc"},
			Conversions: map[string]float64{"mmol/l": 38.67},
		},
		{
			Key: "HDL", Display: "HDL Cholesterol", Unit: "mg/dL",
			Low: f(40), High: f(60),
			Aliases:     []string{"hdl cholesterol", "high-density lipoprotein", "hdl-c", "good cholesterol"},
			Conversions: map[string]float64{"mmol/l": 38.67},
		},
		{
			Key: "LDL", Display: "LDL Cholesterol", Unit: "mg/dL",
			Low: f(0), High: f(100),
			Aliases:     []string{"ldl cholesterol", "low-density lipoprotein", "ldl-c", "bad cholesterol"},
			Conversions: map[string]float64{"mmol/l": 38.67},
		},
		{
			Key: "TRIG", Display: "Triglycerides", Unit: "mg/dL",
			Low: f(0), High: f(150),
			Aliases:     []string{"triglycerides", "tg", "trigs"},
			Conversions: map[string]float64{"mmol/l": 88.57},
		},

		// Electrolytes
		{
			Key: "NA", Display: "Sodium", Unit: "mmol/L",
			Low: f(135), High: f(145),
			PlausibleLow: f(100), PlausibleHigh: f(180),
			Aliases: []string{"sodium", "na+", "serum sodium"},
		},
		{
			Key: "K", Display: "Potassium", Unit: "mmol/L",
			Low: f(3.5), High: f(5.0),
			PlausibleLow: f(1), PlausibleHigh: f(10),
			Aliases: []string{"potassium", "k+", "serum potassium"},
		},
		{
			Key: "CL", Display: "Chloride", Unit: "mmol/L",
			Low: f(98), High: f(107),
			Aliases: []string{"chloride", "cl-", "serum chloride"},
		},
		{
			Key: "CA", Display: "Calcium", Unit: "mg/dL",
			Low: f(8.5), High: f(10.5),
			Aliases:     []string{"calcium", "ca++", "serum calcium", "total calcium"},
			Conversions: map[string]float64{"mmol/l": 4.008},
		},
		{
			Key: "MG", Display: "Magnesium", Unit: "mg/dL",
			Low: f(1.7), High: f(2.2),
			Aliases: []string{"magnesium", "mg++", "serum magnesium"},
		},
		{
			Key: "PHOS", Display: "Phosphorus", Unit: "mg/dL",
			Low: f(2.5), High: f(4.5),
			Aliases: []string{"phosphorus", "phosphate", "serum phosphorus", "phosphorous"},
		},

		// Diabetes markers
		{
			Key: "A1C", Display: "Hemoglobin A1c", Unit: "%",
			Low: f(4.0), High: f(5.6),
			Aliases: []string{"hemoglobin a1c", "glycated hemoglobin", "hba1c", "a1c", "glycohemoglobin", "glycosylated hemoglobin"},
		},

		// Thyroid panel
		{
			Key: "TSH", Display: "Thyroid Stimulating Hormone", Unit: "mIU/L",
			Low: f(0.5), High: f(5.0),
			Aliases: []string{"thyroid stimulating hormone", "thyrotropin", "thyroid-stimulating hormone"},
		},
		{
			Key: "FT4", Display: "Free T4", Unit: "ng/dL",
			Low: f(0.8), High: f(1.8),
			Aliases: []string{"free t4", "free thyroxine", "thyroxine free"},
		},
		{
			Key: "FT3", Display: "Free T3", Unit: "pg/mL",
			Low: f(2.3), High: f(4.2),
			Aliases: []string{"free t3", "free triiodothyronine"},
		},

		// Iron studies
		{
			Key: "IRON", Display: "Serum Iron", Unit: "µg/dL",
			Low: f(60), High: f(170),
			Aliases: []string{"serum iron", "iron", "fe"},
		},
		{
			Key: "FERR", Display: "Ferritin", Unit: "ng/mL",
			Low: f(30), High: f(400),
			Aliases: []string{"ferritin", "serum ferritin"},
		},
		{
			Key: "TIBC", Display: "Total Iron Binding Capacity", Unit: "µg/dL",
			Low: f(240), High: f(450),
			Aliases: []string{"total iron binding capacity"},
		},

		// Inflammatory markers
		{
			Key: "CRP", Display: "C-Reactive Protein", Unit: "mg/L",
			Low: f(0), High: f(8),
			Aliases: []string{"c-reactive protein", "crp test", "high-sensitivity crp", "hs-crp"},
		},
		{
			Key: "ESR", Display: "Erythrocyte Sedimentation Rate", Unit: "mm/hr",
			Low: f(0), High: f(15),
			Aliases: []string{"erythrocyte sedimentation rate", "sed rate", "sedimentation rate"},
		},

		// Vitamins
		{
			Key: "VIT_D", Display: "Vitamin D", Unit: "ng/mL",
			Low: f(30), High: f(100),
			Aliases:     []string{"vitamin d", "25-oh vitamin d", "25-hydroxyvitamin d", "25-oh d", "calcidiol"},
			Conversions: map[string]float64{"nmol/l": 0.4},
		},
		{
			Key: "VIT_B12", Display: "Vitamin B12", Unit: "pg/mL",
			Low: f(200), High: f(900),
			Aliases: []string{"vitamin b12", "cobalamin", "cyanocobalamin"},
		},
		{
			Key: "FOLATE", Display: "Folate", Unit: "ng/mL",
			Low: f(2.7), High: f(17.0),
			Aliases: []string{"folate", "folic acid", "vitamin b9"},
		},

		// Coagulation
		{
			Key: "INR", Display: "INR", Unit: "",
			Low: f(0.8), High: f(1.2),
			Aliases: []string{"international normalized ratio", "prothrombin time international normalized ratio"},
		},
		{
			Key: "PT", Display: "Prothrombin Time", Unit: "sec",
			Low: f(11), High: f(13.5),
			Aliases: []string{"prothrombin time", "pro time"},
		},
	}
}
