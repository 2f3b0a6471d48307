package statement

// Default statement layouts per the Turkish uniform reporting format.
// Negative-impact placements are the contra accounts inside each leaf.

// DefaultAssetTemplate lays out the asset side of the balance sheet.
func DefaultAssetTemplate() *Template {
	return &Template{
		Name: "bilanço aktif",
		Root: &Node{
			Label: "AKTİF (VARLIKLAR)",
			Children: []*Node{
				{
					Label: "I. DÖNEN VARLIKLAR",
					Children: []*Node{
						{Label: "A. HAZIR DEĞERLER", Accounts: []LeafAccount{
							{Code: "100", Impact: 1},
							{Code: "101", Impact: 1},
							{Code: "102", Impact: 1},
							{Code: "103", Impact: -1},
							{Code: "108", Impact: 1},
						}},
						{Label: "C. TİCARİ ALACAKLAR", Accounts: []LeafAccount{
							{Code: "120", Impact: 1},
							{Code: "121", Impact: 1},
							{Code: "129", Impact: -1},
						}},
						{Label: "D. STOKLAR", Accounts: []LeafAccount{
							{Code: "153", Impact: 1},
						}},
						{Label: "E. DİĞER DÖNEN VARLIKLAR", Accounts: []LeafAccount{
							{Code: "190", Impact: 1},
							{Code: "191", Impact: 1},
						}},
					},
				},
				{
					Label: "II. DURAN VARLIKLAR",
					Children: []*Node{
						{Label: "B. MADDİ DURAN VARLIKLAR", Accounts: []LeafAccount{
							{Code: "252", Impact: 1},
							{Code: "254", Impact: 1},
							{Code: "255", Impact: 1},
							{Code: "257", Impact: -1},
						}},
					},
				},
			},
		},
	}
}

// DefaultLiabilityEquityTemplate lays out the liabilities-and-equity side.
func DefaultLiabilityEquityTemplate() *Template {
	return &Template{
		Name: "bilanço pasif",
		Root: &Node{
			Label: "PASİF (KAYNAKLAR)",
			Children: []*Node{
				{
					Label: "III. KISA VADELİ YABANCI KAYNAKLAR",
					Children: []*Node{
						{Label: "A. MALİ BORÇLAR", Accounts: []LeafAccount{
							{Code: "300", Impact: 1},
						}},
						{Label: "B. TİCARİ BORÇLAR", Accounts: []LeafAccount{
							{Code: "320", Impact: 1},
						}},
						{Label: "E. ÖDENECEK VERGİ VE DİĞER YÜKÜMLÜLÜKLER", Accounts: []LeafAccount{
							{Code: "360", Impact: 1},
							{Code: "391", Impact: 1},
						}},
					},
				},
				{
					Label: "V. ÖZKAYNAKLAR",
					Children: []*Node{
						{Label: "A. ÖDENMİŞ SERMAYE", Accounts: []LeafAccount{
							{Code: "500", Impact: 1},
						}},
						{Label: "D. GEÇMİŞ YILLAR KÂRLARI/ZARARLARI", Accounts: []LeafAccount{
							{Code: "570", Impact: 1},
							{Code: "580", Impact: -1},
						}},
						{Label: "E. DÖNEM NET KÂRI/ZARARI", Accounts: []LeafAccount{
							{Code: "590", Impact: 1},
							{Code: "591", Impact: -1},
						}},
					},
				},
			},
		},
	}
}

// DefaultIncomeLines is the income-statement pipeline: aggregation lines pull
// classified account groups, subtotal lines fold earlier lines. Deduction and
// cost lines arrive already negative through their impact signs, so every
// subtotal is a plain addition.
func DefaultIncomeLines() []Line {
	return []Line{
		{Name: "A. BRÜT SATIŞLAR", Groups: []string{"A. BRÜT SATIŞLAR"}},
		{Name: "B. SATIŞ İNDİRİMLERİ (-)", Groups: []string{"B. SATIŞ İNDİRİMLERİ (-)"}},
		{Name: "NET SATIŞLAR", Combine: &Combine{Op: OpAdd, Operands: []string{"A. BRÜT SATIŞLAR", "B. SATIŞ İNDİRİMLERİ (-)"}}},
		{Name: "C. SATIŞLARIN MALİYETİ (-)", Groups: []string{"C. SATIŞLARIN MALİYETİ (-)"}},
		{Name: "BRÜT SATIŞ KÂRI (ZARARI)", Combine: &Combine{Op: OpAdd, Operands: []string{"NET SATIŞLAR", "C. SATIŞLARIN MALİYETİ (-)"}}},
		{Name: "D. FAALİYET GİDERLERİ (-)", Groups: []string{"D. FAALİYET GİDERLERİ (-)"}},
		{Name: "ESAS FAALİYET KÂRI (ZARARI)", Combine: &Combine{Op: OpAdd, Operands: []string{"BRÜT SATIŞ KÂRI (ZARARI)", "D. FAALİYET GİDERLERİ (-)"}}},
		{Name: "E. DİĞER FAALİYETLERDEN OLAĞAN GELİR VE KÂRLAR", Groups: []string{"E. DİĞER FAALİYETLERDEN OLAĞAN GELİR VE KÂRLAR"}},
		{Name: "OLAĞAN KÂR (ZARAR)", Combine: &Combine{Op: OpAdd, Operands: []string{"ESAS FAALİYET KÂRI (ZARARI)", "E. DİĞER FAALİYETLERDEN OLAĞAN GELİR VE KÂRLAR"}}},
		{Name: "G. FİNANSMAN GİDERLERİ (-)", Groups: []string{"G. FİNANSMAN GİDERLERİ (-)"}},
		{Name: "SÜRDÜRÜLEN FAALİYETLER VERGİ ÖNCESİ KÂRI (ZARARI)", Combine: &Combine{Op: OpAdd, Operands: []string{"OLAĞAN KÂR (ZARAR)", "G. FİNANSMAN GİDERLERİ (-)"}}},
	}
}
