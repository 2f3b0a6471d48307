package coa

// DefaultClassifications returns the built-in chart of accounts, following the
// Turkish uniform chart (Tekdüzen Hesap Planı). Deployments with a custom
// chart load overrides on top via LoadFile.
func DefaultClassifications() []Classification {
	return []Classification{
		// I. Current assets
		{Code: "100", Name: "KASA", Nature: NatureAsset, Side: SideDebit, Section: SectionBalanceSheetAsset, Group: "I. DÖNEN VARLIKLAR", SubGroup: "A. HAZIR DEĞERLER"},
		{Code: "101", Name: "ALINAN ÇEKLER", Nature: NatureAsset, Side: SideDebit, Section: SectionBalanceSheetAsset, Group: "I. DÖNEN VARLIKLAR", SubGroup: "A. HAZIR DEĞERLER"},
		{Code: "102", Name: "BANKALAR", Nature: NatureAsset, Side: SideDebit, Section: SectionBalanceSheetAsset, Group: "I. DÖNEN VARLIKLAR", SubGroup: "A. HAZIR DEĞERLER"},
		{Code: "103", Name: "VERİLEN ÇEKLER VE ÖDEME EMİRLERİ (-)", Nature: NatureContraAsset, Side: SideCredit, Section: SectionBalanceSheetAsset, Group: "I. DÖNEN VARLIKLAR", SubGroup: "A. HAZIR DEĞERLER"},
		{Code: "108", Name: "DİĞER HAZIR DEĞERLER", Nature: NatureAsset, Side: SideDebit, Section: SectionBalanceSheetAsset, Group: "I. DÖNEN VARLIKLAR", SubGroup: "A. HAZIR DEĞERLER"},
		{Code: "120", Name: "ALICILAR", Nature: NatureAsset, Side: SideDebit, Section: SectionBalanceSheetAsset, Group: "I. DÖNEN VARLIKLAR", SubGroup: "C. TİCARİ ALACAKLAR"},
		{Code: "121", Name: "ALACAK SENETLERİ", Nature: NatureAsset, Side: SideDebit, Section: SectionBalanceSheetAsset, Group: "I. DÖNEN VARLIKLAR", SubGroup: "C. TİCARİ ALACAKLAR"},
		{Code: "129", Name: "ŞÜPHELİ TİCARİ ALACAKLAR KARŞILIĞI (-)", Nature: NatureContraAsset, Side: SideCredit, Section: SectionBalanceSheetAsset, Group: "I. DÖNEN VARLIKLAR", SubGroup: "C. TİCARİ ALACAKLAR"},
		{Code: "153", Name: "TİCARİ MALLAR", Nature: NatureAsset, Side: SideDebit, Section: SectionBalanceSheetAsset, Group: "I. DÖNEN VARLIKLAR", SubGroup: "D. STOKLAR"},
		{Code: "190", Name: "DEVREDEN KDV", Nature: NatureAsset, Side: SideDebit, Section: SectionBalanceSheetAsset, Group: "I. DÖNEN VARLIKLAR", SubGroup: "E. DİĞER DÖNEN VARLIKLAR"},
		{Code: "191", Name: "İNDİRİLECEK KDV", Nature: NatureAsset, Side: SideDebit, Section: SectionBalanceSheetAsset, Group: "I. DÖNEN VARLIKLAR", SubGroup: "E. DİĞER DÖNEN VARLIKLAR"},

		// II. Non-current assets
		{Code: "252", Name: "BİNALAR", Nature: NatureAsset, Side: SideDebit, Section: SectionBalanceSheetAsset, Group: "II. DURAN VARLIKLAR", SubGroup: "B. MADDİ DURAN VARLIKLAR"},
		{Code: "254", Name: "TAŞITLAR", Nature: NatureAsset, Side: SideDebit, Section: SectionBalanceSheetAsset, Group: "II. DURAN VARLIKLAR", SubGroup: "B. MADDİ DURAN VARLIKLAR"},
		{Code: "255", Name: "DEMİRBAŞLAR", Nature: NatureAsset, Side: SideDebit, Section: SectionBalanceSheetAsset, Group: "II. DURAN VARLIKLAR", SubGroup: "B. MADDİ DURAN VARLIKLAR"},
		{Code: "257", Name: "BİRİKMİŞ AMORTİSMANLAR (-)", Nature: NatureContraAsset, Side: SideCredit, Section: SectionBalanceSheetAsset, Group: "II. DURAN VARLIKLAR", SubGroup: "B. MADDİ DURAN VARLIKLAR"},

		// III. Short-term liabilities
		{Code: "300", Name: "BANKA KREDİLERİ", Nature: NatureLiability, Side: SideCredit, Section: SectionBalanceSheetLiabEquity, Group: "III. KISA VADELİ YABANCI KAYNAKLAR", SubGroup: "A. MALİ BORÇLAR"},
		{Code: "320", Name: "SATICILAR", Nature: NatureLiability, Side: SideCredit, Section: SectionBalanceSheetLiabEquity, Group: "III. KISA VADELİ YABANCI KAYNAKLAR", SubGroup: "B. TİCARİ BORÇLAR"},
		{Code: "360", Name: "ÖDENECEK VERGİ VE FONLAR", Nature: NatureLiability, Side: SideCredit, Section: SectionBalanceSheetLiabEquity, Group: "III. KISA VADELİ YABANCI KAYNAKLAR", SubGroup: "E. ÖDENECEK VERGİ VE DİĞER YÜKÜMLÜLÜKLER"},
		{Code: "391", Name: "HESAPLANAN KDV", Nature: NatureLiability, Side: SideCredit, Section: SectionBalanceSheetLiabEquity, Group: "III. KISA VADELİ YABANCI KAYNAKLAR", SubGroup: "E. ÖDENECEK VERGİ VE DİĞER YÜKÜMLÜLÜKLER"},

		// V. Equity
		{Code: "500", Name: "SERMAYE", Nature: NatureEquity, Side: SideCredit, Section: SectionBalanceSheetLiabEquity, Group: "V. ÖZKAYNAKLAR", SubGroup: "A. ÖDENMİŞ SERMAYE"},
		{Code: "570", Name: "GEÇMİŞ YILLAR KÂRLARI", Nature: NatureEquity, Side: SideCredit, Section: SectionBalanceSheetLiabEquity, Group: "V. ÖZKAYNAKLAR", SubGroup: "D. GEÇMİŞ YILLAR KÂRLARI/ZARARLARI"},
		{Code: "580", Name: "GEÇMİŞ YILLAR ZARARLARI (-)", Nature: NatureContraLiabilityOrEq, Side: SideDebit, Section: SectionBalanceSheetLiabEquity, Group: "V. ÖZKAYNAKLAR", SubGroup: "D. GEÇMİŞ YILLAR KÂRLARI/ZARARLARI"},
		{Code: "590", Name: "DÖNEM NET KÂRI", Nature: NatureEquity, Side: SideCredit, Section: SectionBalanceSheetLiabEquity, Group: "V. ÖZKAYNAKLAR", SubGroup: "E. DÖNEM NET KÂRI/ZARARI"},
		{Code: "591", Name: "DÖNEM NET ZARARI (-)", Nature: NatureContraLiabilityOrEq, Side: SideDebit, Section: SectionBalanceSheetLiabEquity, Group: "V. ÖZKAYNAKLAR", SubGroup: "E. DÖNEM NET KÂRI/ZARARI"},

		// Income statement
		{Code: "600", Name: "YURTİÇİ SATIŞLAR", Nature: NatureRevenue, Side: SideCredit, Section: SectionIncomeStatement, Group: "A. BRÜT SATIŞLAR"},
		{Code: "601", Name: "YURTDIŞI SATIŞLAR", Nature: NatureRevenue, Side: SideCredit, Section: SectionIncomeStatement, Group: "A. BRÜT SATIŞLAR"},
		{Code: "610", Name: "SATIŞTAN İADELER (-)", Nature: NatureExpense, Side: SideDebit, Section: SectionIncomeStatement, Group: "B. SATIŞ İNDİRİMLERİ (-)"},
		{Code: "611", Name: "SATIŞ İSKONTOLARI (-)", Nature: NatureExpense, Side: SideDebit, Section: SectionIncomeStatement, Group: "B. SATIŞ İNDİRİMLERİ (-)"},
		{Code: "621", Name: "SATILAN TİCARİ MALLAR MALİYETİ (-)", Nature: NatureCostOfRevenue, Side: SideDebit, Section: SectionIncomeStatement, Group: "C. SATIŞLARIN MALİYETİ (-)"},
		{Code: "632", Name: "GENEL YÖNETİM GİDERLERİ (-)", Nature: NatureExpense, Side: SideDebit, Section: SectionIncomeStatement, Group: "D. FAALİYET GİDERLERİ (-)"},
		{Code: "642", Name: "FAİZ GELİRLERİ", Nature: NatureRevenue, Side: SideCredit, Section: SectionIncomeStatement, Group: "E. DİĞER FAALİYETLERDEN OLAĞAN GELİR VE KÂRLAR"},
		{Code: "660", Name: "KISA VADELİ BORÇLANMA GİDERLERİ (-)", Nature: NatureExpense, Side: SideDebit, Section: SectionIncomeStatement, Group: "G. FİNANSMAN GİDERLERİ (-)"},
	}
}

// DefaultRegistry builds a registry over DefaultClassifications. The built-in
// chart is known-good, so a failure here is a programming error.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultClassifications())
	if err != nil {
		panic(err)
	}
	return r
}
