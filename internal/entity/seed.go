package entity

// Seed data for the canonical-organization registry: underwriters, municipal
// advisors and bond/underwriter counsel observed across scraped deals. Kept
// in one file, decoupled from resolution logic, so the table can be extended
// and tested independently. Entries must stay collision-free: no variant or
// domain may appear under two canonical names.
var seedEntities = []Entity{
	// Underwriters (investment banks and securities firms)
	{
		CanonicalName: "Barclays Capital",
		NameVariations: []string{
			"Barclays",
			"BARCLAYS",
			"Barclays Capital",
			"BARCLAYS CAPITAL",
			"Barclays Capital Inc.",
		},
		Websites: []string{
			"barclays.com",
			"barclays.co.uk",
		},
	},
	{
		CanonicalName: "BofA Securities",
		NameVariations: []string{
			"Bank of America",
			"BofA Securities",
			"BofA Securities, Inc.",
			"BofA Merrill Lynch",
			"BOFA SECURITIES",
			"BofA SECURITIES",
			"Bank of America Securities",
			"Bank of America Securities, Inc.",
			"BofA",
		},
		Websites: []string{
			"bofaml.com",
			"bankofamerica.com",
		},
	},
	{
		CanonicalName: "KeyBanc Capital Markets",
		NameVariations: []string{
			"KeyBanc Capital Markets",
			"KeyBanc Capital Markets Inc.",
			"KeyBanc",
			"Key Capital Markets",
			"Cain Brothers",
			"Cain Brothers, a division of KeyBanc Capital Markets",
		},
		Websites: []string{
			"key.com",
			"cainbrothers.com",
		},
	},
	{
		CanonicalName: "Colliers Securities",
		NameVariations: []string{
			"Colliers Securities",
			"Colliers Securities LLC",
			"COLLIERS",
			"COLLIERS SECURITIES LLC",
		},
		Websites: []string{
			"colliers.com",
		},
	},
	{
		CanonicalName: "Piper Sandler",
		NameVariations: []string{
			"Piper Sandler",
			"Piper Sandler & Co.",
			"PIPER SANDLER",
			"Piper Sandler & Co., Inc.",
			"PIPER SANDLER & CO.",
		},
		Websites: []string{
			"pipersandler.com",
		},
	},
	{
		CanonicalName: "Loop Capital Markets",
		NameVariations: []string{
			"Loop Capital Markets",
			"Loop Capital",
			"LOOP CAPITAL",
		},
		Websites: []string{
			"loopcapital.com",
		},
	},
	{
		CanonicalName: "Ziegler",
		NameVariations: []string{
			"Ziegler",
			"ZIEGLER",
			"B.C. Ziegler",
			"B.C. Ziegler and Company",
		},
		Websites: []string{
			"ziegler.com",
		},
	},
	{
		CanonicalName: "Fifth Third Securities",
		NameVariations: []string{
			"Fifth Third Securities",
			"Fifth Third Securities, Inc.",
			"Fifth Third Securities, Inc. (MA)",
			"Fifth Third",
			"FIFTH THIRD",
			"5/3 Securities",
		},
		Websites: []string{
			"53.com",
		},
	},
	{
		CanonicalName: "Goldman Sachs & Co. LLC",
		NameVariations: []string{
			"Goldman Sachs",
			"GOLDMAN SACHS",
			"Goldman, Sachs & Co.",
			"Goldman Sachs & Co.",
			"Goldman Sachs & Co. LLC",
			"GS",
		},
		Websites: []string{
			"goldmansachs.com",
			"gs.com",
		},
	},
	{
		CanonicalName: "J.P. Morgan",
		NameVariations: []string{
			"JPMorgan",
			"J.P. Morgan",
			"JP Morgan",
			"JPMorgan Chase",
			"JPMORGAN",
			"JPMorgan Chase & Co.",
			"J.P. MORGAN",
			"j.p. morgan",
			"j.p morgan",
			"j.p.morgan",
			"jp morgan",
			"jpmorgan",
			"j. p. m o r g a n",
			"j. p. morgan",
			"j .p. morgan",
			"j. p.morgan",
			"pmorgan",
		},
		Websites: []string{
			"jpmorgan.com",
			"jpmorganchase.com",
		},
	},
	{
		CanonicalName: "Morgan Stanley",
		NameVariations: []string{
			"Morgan Stanley",
			"MORGAN STANLEY",
			"Morgan Stanley & Co.",
			"Morgan Stanley & Co. LLC",
		},
		Websites: []string{
			"morganstanley.com",
		},
	},
	{
		CanonicalName: "Citigroup",
		NameVariations: []string{
			"Citigroup",
			"CITIGROUP",
			"Citigroup Inc.",
		},
		Websites: []string{
			"citigroup.com",
		},
	},
	{
		CanonicalName: "RBC Capital Markets",
		NameVariations: []string{
			"RBC Capital Markets",
			"RBC",
			"Royal Bank of Canada",
			"RBC CM",
		},
		Websites: []string{
			"rbccm.com",
			"rbc.com",
		},
	},
	{
		CanonicalName: "TD Securities",
		NameVariations: []string{
			"TD Securities",
			"TD SECURITIES",
			"TD Securities Inc.",
			"TD Securities LLC",
		},
		Websites: []string{
			"tdsecurities.com",
			"td.com",
		},
	},
	{
		CanonicalName: "Wells Fargo",
		NameVariations: []string{
			"Wells Fargo",
			"WELLS FARGO",
			"Wells Fargo Securities",
			"Wells Fargo Bank",
			"Wells Fargo & Company",
			"Wells Fargo Corporate & Investment Banking",
			"Wells Fargo & Company, N.A.",
		},
		Websites: []string{
			"wellsfargo.com",
		},
	},
	{
		CanonicalName: "Jefferies",
		NameVariations: []string{
			"Jefferies",
			"JEFFERIES",
			"Jefferies LLC",
			"Jefferies Group",
		},
		Websites: []string{
			"jefferies.com",
		},
	},
	{
		CanonicalName: "Raymond James",
		NameVariations: []string{
			"Raymond James",
			"RAYMOND JAMES",
			"Raymond James & Associates",
		},
		Websites: []string{
			"raymondjames.com",
		},
	},
	{
		CanonicalName: "Truist",
		NameVariations: []string{
			"Truist",
			"TRUIST",
			"Truist Securities",
			"BB&T",
			"SunTrust Robinson Humphrey",
		},
		Websites: []string{
			"truist.com",
		},
	},
	{
		CanonicalName: "American Veterans Group",
		NameVariations: []string{
			"American Veterans Group",
			"American Veterans Group, PBC",
		},
		Websites: []string{
			"americanveteransgroup.com",
		},
	},
	{
		CanonicalName: "Blaylock Van",
		NameVariations: []string{
			"Blaylock Van",
			"Blaylock Van, LLC",
		},
		Websites: []string{
			"blaylockvan.com",
		},
	},
	{
		CanonicalName: "BNY Mellon Capital Markets",
		NameVariations: []string{
			"BNY Mellon Capital Markets",
			"BNY Mellon Capital Markets, LLC",
		},
		Websites: []string{
			"bnymellon.com",
		},
	},
	{
		CanonicalName: "Siebert Williams Shank",
		NameVariations: []string{
			"Siebert Williams Shank",
			"Siebert Williams Shank & Co.",
			"Siebert Williams Shank & Co., LLC",
			"SWS",
			"Siebert Williams",
			"SIEBERT WILLIAMS SHANK",
		},
		Websites: []string{
			"siebertwilliams.com",
		},
	},
	{
		CanonicalName: "Stephens Inc.",
		NameVariations: []string{
			"Stephens",
			"Stephens Inc.",
			"Stephens Inc",
			"STEPHENS",
			"STEPHENS INC",
		},
		Websites: []string{
			"stephens.com",
		},
	},
	{
		CanonicalName: "UBS Financial Services",
		NameVariations: []string{
			"UBS",
			"UBS Group",
			"Ubs",
			"UBS Financial",
			"UBS Financial Services",
			"UBS Financial Services Inc.",
			"UBS Securities",
			"UBS Investment Bank",
		},
		Websites: []string{
			"ubs.com",
			"www.ubs.com",
		},
	},
	{
		CanonicalName: "PNC Capital Markets",
		NameVariations: []string{
			"PNC",
			"PNC Capital Markets",
			"PNC Capital Markets LLC",
			"PNC CAPITAL MARKETS",
			"PNC CAPITAL MARKETS LLC",
			"PNC Bank",
			"PNC Financial Services",
		},
		Websites: []string{
			"pnc.com",
			"pnccapitalmarkets.com",
		},
	},
	{
		CanonicalName: "HJ Sims",
		NameVariations: []string{
			"HJ Sims",
			"H.J. Sims",
			"Herbert J. Sims",
			"Herbert J. Sims & Co.",
			"Herbert J. Sims & Co., LLC",
			"HJS",
			"HJSIMS",
		},
		Websites: []string{
			"hjsims.com",
		},
	},
	{
		CanonicalName: "U.S. Bank",
		NameVariations: []string{
			"U.S. Bank",
			"US Bank",
			"USBank",
			"U.S. Bancorp",
			"US BANK",
			"U.S. BANK",
			"U.S. Bank National Association",
		},
		Websites: []string{
			"usbank.com",
			"www.usbank.com",
		},
	},
	{
		CanonicalName: "Northland Securities",
		NameVariations: []string{
			"Northland Securities",
			"Northland Securities, Inc.",
			"NORTHLAND SECURITIES",
			"Northland",
			"NorthlandSecurities",
			"Northland Capital Markets",
		},
		Websites: []string{
			"northlandsecurities.com",
			"northlandcapitalmarkets.com",
		},
	},
	{
		CanonicalName: "Academy Securities",
		NameVariations: []string{
			"Academy Securities",
			"Academy Securities, Inc.",
			"ACADEMY SECURITIES",
		},
		Websites: []string{
			"academysecurities.com",
		},
	},
	{
		CanonicalName: "AmeriVet Securities",
		NameVariations: []string{
			"AmeriVet Securities",
			"AmeriVet Securities, Inc.",
			"AMERIVET SECURITIES",
		},
		Websites: []string{
			"amerivetsecurities.com",
		},
	},
	{
		CanonicalName: "Bancroft Capital",
		NameVariations: []string{
			"Bancroft Capital",
			"Bancroft Capital, LLC",
			"BANCROFT CAPITAL",
		},
		Websites: []string{
			"bancroft4vets.com",
		},
	},
	{
		CanonicalName: "Cabrera Capital Markets",
		NameVariations: []string{
			"Cabrera Capital Markets",
			"Cabrera Capital Markets, LLC",
			"CABRERA CAPITAL MARKETS",
		},
		Websites: []string{
			"cabreracapital.com",
		},
	},
	{
		CanonicalName: "Davenport & Company",
		NameVariations: []string{
			"Davenport & Company",
			"Davenport & Company LLC",
			"Davenport & Co.",
			"DAVENPORT & COMPANY",
		},
		Websites: []string{
			"davenportllc.com",
			"investdavenport.com",
		},
	},
	{
		CanonicalName: "FHN Financial Capital Markets",
		NameVariations: []string{
			"FHN Financial Capital Markets",
			"FHN Financial",
			"First Horizon",
			"FHN FINANCIAL",
		},
		Websites: []string{
			"fhnfinancial.com",
		},
	},
	{
		CanonicalName: "Huntington Capital Markets",
		NameVariations: []string{
			"Huntington Capital Markets",
			"Huntington",
			"HUNTINGTON CAPITAL MARKETS",
			"The Huntington Investment Company",
		},
		Websites: []string{
			"huntington.com",
		},
	},
	{
		CanonicalName: "Janney Montgomery Scott",
		NameVariations: []string{
			"Janney Montgomery Scott",
			"Janney Montgomery Scott LLC",
			"Janney",
			"JANNEY MONTGOMERY SCOTT",
		},
		Websites: []string{
			"janney.com",
		},
	},
	{
		CanonicalName: "Melvin Securities",
		NameVariations: []string{
			"Melvin Securities",
			"Melvin Securities, LLC",
			"MELVIN SECURITIES",
		},
		Websites: []string{
			"melvinsecurities.com",
		},
	},
	{
		CanonicalName: "Multi-Bank Securities",
		NameVariations: []string{
			"Multi-Bank Securities",
			"Multi-Bank Securities, Inc.",
			"MULTI-BANK SECURITIES",
			"MBS",
		},
		Websites: []string{
			"mbssecurities.com",
		},
	},
	{
		CanonicalName: "Rice Financial Products Company",
		NameVariations: []string{
			"Rice Financial Products Company",
			"Rice Financial",
			"RICE FINANCIAL PRODUCTS COMPANY",
			"Rice Financial Products Co.",
		},
		Websites: []string{
			"ricefin.com",
		},
	},
	{
		CanonicalName: "SMBC Nikko",
		NameVariations: []string{
			"SMBC Nikko",
			"SMBC Nikko Securities America",
			"SMBC NIKKO",
			"SMBC Nikko Securities",
		},
		Websites: []string{
			"smbcnikko-si.com",
		},
	},
	{
		CanonicalName: "Ramirez & Co.",
		NameVariations: []string{
			"Ramirez & Co.",
			"Ramirez & Co., Inc.",
			"RAMIREZ & CO., INC.",
			"Ramirez",
			"Samuel A. Ramirez & Company",
		},
		Websites: []string{
			"ramirezco.com",
		},
	},
	{
		CanonicalName: "Estrada Hinojosa",
		NameVariations: []string{
			"Estrada Hinojosa",
			"Estrada Hinojosa & Company",
			"Estrada Hinojosa & Company, Inc.",
			"ESTRADA HINOJOSA",
			"TRB Capital Markets",
			"TRB Capital Markets, LLC",
			"Estrada Hinojosa Investment Bankers",
		},
		Websites: []string{
			"ehmuni.com",
			"estradahinojosa.com",
		},
	},
	{
		CanonicalName: "Bryant Miller Olive",
		NameVariations: []string{
			"Burke, Mayborn, O'Mara",
			"Burke Mayborn O'Mara",
			"Bryant Miller Olive",
			"BMO Law",
		},
		Websites: []string{
			"bmolaw.com",
		},
	},
	{
		CanonicalName: "Brown Hutchinson",
		NameVariations: []string{
			"Brown Hutchinson",
			"BROWN HUTCHINSON",
			"Brown Hutchinson LLP",
		},
		Websites: []string{
			"brownhutchinson.com",
		},
	},
	{
		CanonicalName: "Hardwick Shiver",
		NameVariations: []string{
			"Hardwick Shiver",
			"HARDWICK SHIVER",
			"Hardwick Shiver Brown",
			"HSB Law",
		},
		Websites: []string{
			"hsblawfirm.com",
		},
	},
	{
		CanonicalName: "Katten Muchin Rosenman",
		NameVariations: []string{
			"Katten Muchin Rosenman",
			"Katten",
			"KATTEN",
			"Katten Law",
		},
		Websites: []string{
			"kattenlaw.com",
		},
	},
	{
		CanonicalName: "Nabors, Giblin & Nickerson, P.A.",
		NameVariations: []string{
			"NG&N",
			"Nabors, Giblin & Nickerson",
			"NGN Law",
			"Nabors, Giblin & Nickerson, P.A.",
		},
		Websites: []string{
			"ngnlaw.com",
		},
	},
	{
		CanonicalName: "Pearlman & Miranda, LLC",
		NameVariations: []string{
			"Pearlman & Miranda",
			"Pearlman & Miranda, LLC",
			"Pearlman and Miranda",
			"PEARLMAN & MIRANDA",
			"Pearlman Miranda",
		},
		Websites: []string{
			"pearlmanmiranda.com",
		},
	},
	{
		CanonicalName: "Robinson Bradshaw",
		NameVariations: []string{
			"Robinson Bradshaw",
			"ROBINSON BRADSHAW",
			"Robinson Bradshaw & Hinson",
			"RBH Law",
		},
		Websites: []string{
			"rbh.com",
			"robinsonbradshaw.com",
		},
	},
	{
		CanonicalName: "Saul Ewing",
		NameVariations: []string{
			"Saul Ewing",
			"SAUL EWING",
			"Saul Ewing LLP",
			"Saul Ewing Arnstein & Lehr",
		},
		Websites: []string{
			"saul.com",
		},
	},
	{
		CanonicalName: "Oppenheimer & Co.",
		NameVariations: []string{
			"Oppenheimer & Co.",
			"Oppenheimer",
			"OPPENHEIMER",
			"Oppenheimer & Co. Inc.",
			"Opco",
		},
		Websites: []string{
			"opco.com",
			"oppenheimer.com",
		},
	},
	{
		CanonicalName: "Mesirow Financial",
		NameVariations: []string{
			"Mesirow Financial",
			"Mesirow",
			"MESIROW",
			"Mesirow Financial Holdings, Inc.",
		},
		Websites: []string{
			"mesirow.com",
			"mesirowfinancial.com",
		},
	},
	{
		CanonicalName: "Blue River Analytics",
		NameVariations: []string{
			"Blue River Analytics",
			"Blue River",
			"BRV",
			"BRV LLC",
			"Blue River Analytics, LLC",
		},
		Websites: []string{
			"brv-llc.com",
		},
	},
	{
		CanonicalName: "The Frazer Lanier Company",
		NameVariations: []string{
			"The Frazer Lanier Company",
			"Frazer Lanier",
			"FRAZER LANIER",
			"Frazer Lanier Company",
		},
		Websites: []string{
			"frazerlanier.com",
		},
	},
	{
		CanonicalName: "UMB Financial",
		NameVariations: []string{
			"UMB Financial",
			"UMB Bank",
			"UMB",
			"UMB Financial Corporation",
			"UMB Bank n.a.",
		},
		Websites: []string{
			"umb.com",
		},
	},

	// Municipal advisors
	{
		CanonicalName: "SDAO Advisory Services",
		NameVariations: []string{
			"SDAO Advisory Services",
			"SDAO Advisory Services LLC",
			"SDAOAS",
		},
		Websites: []string{
			"sdao.com",
		},
	},
	{
		CanonicalName: "Houlihan Lokey",
		NameVariations: []string{
			"Houlihan Lokey",
			"Houlihan Lokey Capital",
			"Houlihan Lokey Capital, Inc",
			"Houlihan Lokey Capital, Inc (MA)",
		},
		Websites: []string{
			"hl.com",
		},
	},
	{
		CanonicalName: "Echo Financial Products",
		NameVariations: []string{
			"Echo Financial Products",
			"Echo Financial Products, LLC",
			"Echo Financial Products, LLC (MA)",
		},
		Websites: []string{
			"echo-fp.com",
		},
	},
	{
		CanonicalName: "Hilltop Securities",
		NameVariations: []string{
			"Hilltop Securities",
			"Hilltop Securities Inc.",
			"Hilltop Securities Inc. (MA)",
			"HilltopSecurities",
			"HILLTOP",
		},
		Websites: []string{
			"hilltopsecurities.com",
		},
	},
	{
		CanonicalName: "Kaufman Hall",
		NameVariations: []string{
			"Kaufman Hall",
			"Kaufman, Hall & Associates",
			"Kaufman, Hall & Associates, LLC",
			"Kaufman, Hall & Associates, LLC (MA)",
			"kaufm (MA)",
		},
		Websites: []string{
			"kaufmanhall.com",
		},
	},
	{
		CanonicalName: "PFM Financial Advisors",
		NameVariations: []string{
			"PFM",
			"PFM Financial Advisors",
			"PFM Financial Advisors LLC",
			"PFM Financial Advisors LLC (MA)",
			"Public Financial Management",
		},
		Websites: []string{
			"pfm.com",
		},
	},
	{
		CanonicalName: "First River Advisory",
		NameVariations: []string{
			"First River Advisory",
			"First River Advisory L.L.C.",
			"First River Advisory LLC",
			"First River Advisory L.L.C",
			"First River",
			"FRA",
		},
		Websites: []string{
			"firstriver.com",
		},
	},
	{
		CanonicalName: "Columbia Capital",
		NameVariations: []string{
			"Columbia Capital",
			"Columbia Capital Management",
			"Columbia Capital Management, LLC",
		},
		Websites: []string{
			"columbiacapital.com",
		},
	},
	{
		CanonicalName: "Melio & Company",
		NameVariations: []string{
			"Melio & Company",
			"Melio and Company",
			"Melio & Co",
			"Melio Company",
		},
		Websites: []string{
			"meliocompany.com",
		},
	},
	{
		CanonicalName: "Ponder & Co.",
		NameVariations: []string{
			"Ponder & Co.",
			"Ponder and Company",
			"Ponder & Company",
			"Ponder",
		},
		Websites: []string{
			"ponderco.com",
		},
	},
	{
		CanonicalName: "Swap Financial Group",
		NameVariations: []string{
			"Swap Financial Group",
			"Swap Financial",
			"SWAP Financial Group",
			"SFG",
		},
		Websites: []string{
			"swapfinancial.com",
		},
	},
	{
		CanonicalName: "AAFAF",
		NameVariations: []string{
			"AAFAF",
			"Puerto Rico Fiscal Agency and Financial Advisory Authority",
			"Autoridad de Asesoría Financiera y Agencia Fiscal",
		},
		Websites: []string{
			"aafaf.pr.gov",
		},
	},
	{
		CanonicalName: "Acacia Financial Group",
		NameVariations: []string{
			"Acacia Financial Group",
			"Acacia Financial",
			"ACACIA",
			"Acacia Financial Group, Inc.",
		},
		Websites: []string{
			"acaciafin.com",
		},
	},
	{
		CanonicalName: "Argent Financial Group",
		NameVariations: []string{
			"Argent Financial Group",
			"Argent Financial",
			"ARGENT",
			"Argent Financial Group, Inc.",
		},
		Websites: []string{
			"argentfinancial.com",
		},
	},
	{
		CanonicalName: "Brown Advisory",
		NameVariations: []string{
			"Brown Advisory",
			"Brown Advisory LLC",
			"BROWN ADVISORY",
		},
		Websites: []string{
			"brownadvisory.com",
		},
	},
	{
		CanonicalName: "Evercrest Capital",
		NameVariations: []string{
			"Evercrest Capital",
			"Evercrest Advisors",
			"EVERCREST",
			"Evercrest Capital Advisors",
		},
		Websites: []string{
			"evercrestadvisors.com",
		},
	},
	{
		CanonicalName: "First Tryon Advisors",
		NameVariations: []string{
			"First Tryon Advisors",
			"First Tryon",
			"FIRST TRYON",
		},
		Websites: []string{
			"firsttryon.com",
		},
	},
	{
		CanonicalName: "Government Capital Securities",
		NameVariations: []string{
			"Government Capital Securities",
			"Government Capital Securities Corporation",
			"GovCap Securities",
			"GOVCAP",
		},
		Websites: []string{
			"govcapsecurities.com",
		},
	},
	{
		CanonicalName: "Hammond Hanlon Camp",
		NameVariations: []string{
			"Hammond Hanlon Camp",
			"Hammond Hanlon Camp LLC",
			"H2C",
			"H2C Securities",
		},
		Websites: []string{
			"h2c.com",
		},
	},
	{
		CanonicalName: "Hamlin Capital Advisors",
		NameVariations: []string{
			"Hamlin Capital Advisors",
			"Hamlin Capital",
			"Hamlin Advisors",
			"HAMLIN",
		},
		Websites: []string{
			"hamlinadvisors.com",
		},
	},
	{
		CanonicalName: "Huron Consulting Group",
		NameVariations: []string{
			"Huron Consulting Group",
			"Huron Consulting",
			"Huron",
			"HURON",
		},
		Websites: []string{
			"huronconsultinggroup.com",
		},
	},
	{
		CanonicalName: "Lamont Financial Services",
		NameVariations: []string{
			"Lamont Financial Services",
			"Lamont Financial",
			"LAMONT",
			"Lamont Financial Services Corporation",
		},
		Websites: []string{
			"lamontfin.com",
		},
	},
	{
		CanonicalName: "The Majors Group",
		NameVariations: []string{
			"The Majors Group",
			"Majors Group",
			"MAJORS GROUP",
			"Majors",
		},
		Websites: []string{
			"majorsgrp.com",
		},
	},
	{
		CanonicalName: "Marathon Capital",
		NameVariations: []string{
			"Marathon Capital",
			"MARATHON CAPITAL",
			"Marathon",
			"MARA Capital",
		},
		Websites: []string{
			"mara-cap.com",
		},
	},
	{
		CanonicalName: "Public Resources Advisory Group",
		NameVariations: []string{
			"Public Resources Advisory Group",
			"PRAG",
			"Public Resources",
			"PRAG Advisors",
		},
		Websites: []string{
			"pragadvisors.com",
		},
	},
	{
		CanonicalName: "Prager & Co.",
		NameVariations: []string{
			"Prager & Co.",
			"Prager",
			"PRAGER",
			"Prager & Company",
			"Prager & Company, LLC",
		},
		Websites: []string{
			"prager.com",
		},
	},
	{
		CanonicalName: "Robert W. Baird",
		NameVariations: []string{
			"Robert W. Baird",
			"Baird",
			"R.W. Baird",
			"Robert W. Baird & Co.",
			"BAIRD",
		},
		Websites: []string{
			"rwbaird.com",
		},
	},
	{
		CanonicalName: "Stifel",
		NameVariations: []string{
			"Stifel",
			"STIFEL",
			"Stifel Financial",
			"Stifel Financial Corp.",
			"Stifel, Nicolaus & Company",
		},
		Websites: []string{
			"stifel.com",
		},
	},
	{
		CanonicalName: "Yuba Group",
		NameVariations: []string{
			"Yuba Group",
			"YUBA GROUP",
			"Yuba",
			"The Yuba Group",
		},
		Websites: []string{
			"yubagroup.com",
		},
	},

	// Law firms (bond and underwriter counsel)
	{
		CanonicalName: "Cantu Harden Montoya",
		NameVariations: []string{
			"Cantu Harden Montoya",
			"CANTU HARDEN MONTOYA",
			"Cantu Harden & Montoya",
		},
		Websites: []string{
			"cantuhardenmontoya.com",
		},
	},
	{
		CanonicalName: "Murray Barnes Finister",
		NameVariations: []string{
			"Murray Barnes Finister",
			"Murray Barnes Law",
			"MURRAY BARNES",
		},
		Websites: []string{
			"murraybarneslaw.com",
		},
	},
	{
		CanonicalName: "Balch & Bingham",
		NameVariations: []string{
			"Balch & Bingham",
			"Balch and Bingham",
			"BALCH",
		},
		Websites: []string{
			"balch.com",
		},
	},
	{
		CanonicalName: "Ballard Spahr",
		NameVariations: []string{
			"Ballard Spahr",
			"BALLARD SPAHR",
			"Ballard Spahr LLP",
		},
		Websites: []string{
			"ballardspahr.com",
		},
	},
	{
		CanonicalName: "Bass Berry & Sims",
		NameVariations: []string{
			"Bass Berry & Sims",
			"Bass, Berry & Sims",
			"BASS BERRY",
		},
		Websites: []string{
			"bassberry.com",
		},
	},
	{
		CanonicalName: "Barnes & Thornburg",
		NameVariations: []string{
			"Barnes & Thornburg",
			"Barnes and Thornburg",
			"BT Law",
		},
		Websites: []string{
			"btlaw.com",
		},
	},
	{
		CanonicalName: "Bracewell",
		NameVariations: []string{
			"Bracewell",
			"Bracewell LLP",
			"Bracewell Law",
		},
		Websites: []string{
			"bracewelllaw.com",
		},
	},
	{
		CanonicalName: "Bricker & Eckler",
		NameVariations: []string{
			"Bricker & Eckler",
			"Bricker Graydon",
			"BRICKER",
		},
		Websites: []string{
			"brickergraydon.com",
		},
	},
	{
		CanonicalName: "Chapman and Cutler",
		NameVariations: []string{
			"Chapman and Cutler",
			"Chapman & Cutler",
			"Chapman",
		},
		Websites: []string{
			"chapman.com",
		},
	},
	{
		CanonicalName: "Dickinson Wright",
		NameVariations: []string{
			"Dickinson Wright",
			"DICKINSON WRIGHT",
			"Dickinson Wright PLLC",
		},
		Websites: []string{
			"dickinson-wright.com",
		},
	},
	{
		CanonicalName: "Dinsmore & Shohl",
		NameVariations: []string{
			"Dinsmore & Shohl",
			"Dinsmore",
			"DINSMORE",
		},
		Websites: []string{
			"dinsmore.com",
		},
	},
	{
		CanonicalName: "Dorsey & Whitney",
		NameVariations: []string{
			"Dorsey & Whitney",
			"Dorsey",
			"DORSEY",
		},
		Websites: []string{
			"dorsey.com",
		},
	},
	{
		CanonicalName: "Foley & Lardner",
		NameVariations: []string{
			"Foley & Lardner",
			"Foley",
			"FOLEY",
		},
		Websites: []string{
			"foley.com",
		},
	},
	{
		CanonicalName: "Fox Rothschild",
		NameVariations: []string{
			"Fox Rothschild",
			"FOX ROTHSCHILD",
			"Fox Rothschild LLP",
		},
		Websites: []string{
			"foxrothschild.com",
		},
	},
	{
		CanonicalName: "Gilmore & Bell",
		NameVariations: []string{
			"Gilmore & Bell",
			"Gilmore and Bell",
			"GILMORE BELL",
		},
		Websites: []string{
			"gilmorebell.com",
		},
	},
	{
		CanonicalName: "Harris Beach",
		NameVariations: []string{
			"Harris Beach",
			"HARRIS BEACH",
			"Harris Beach PLLC",
		},
		Websites: []string{
			"harrisbeach.com",
		},
	},
	{
		CanonicalName: "Hawkins Delafield & Wood",
		NameVariations: []string{
			"Hawkins Delafield & Wood",
			"Hawkins",
			"HAWKINS",
		},
		Websites: []string{
			"hawkins.com",
		},
	},
	{
		CanonicalName: "Kutak Rock",
		NameVariations: []string{
			"Kutak Rock",
			"KUTAK ROCK",
			"Kutak Rock LLP",
		},
		Websites: []string{
			"kutakrock.com",
		},
	},
	{
		CanonicalName: "McGuireWoods",
		NameVariations: []string{
			"McGuireWoods",
			"McGuire Woods",
			"MCGUIREWOODS",
		},
		Websites: []string{
			"mcguirewoods.com",
		},
	},
	{
		CanonicalName: "Mintz Levin",
		NameVariations: []string{
			"Mintz Levin",
			"Mintz",
			"MINTZ",
		},
		Websites: []string{
			"mintz.com",
		},
	},
	{
		CanonicalName: "Norton Rose Fulbright",
		NameVariations: []string{
			"Norton Rose Fulbright",
			"Norton Rose",
			"NORTON ROSE FULBRIGHT",
		},
		Websites: []string{
			"nortonrosefulbright.com",
		},
	},
	{
		CanonicalName: "Orrick Herrington",
		NameVariations: []string{
			"Orrick Herrington",
			"Orrick",
			"ORRICK",
		},
		Websites: []string{
			"orrick.com",
		},
	},
	{
		CanonicalName: "Quarles & Brady",
		NameVariations: []string{
			"Quarles & Brady",
			"Quarles",
			"QUARLES",
		},
		Websites: []string{
			"quarles.com",
		},
	},
	{
		CanonicalName: "Squire Patton Boggs",
		NameVariations: []string{
			"Squire Patton Boggs",
			"Squire",
			"SQUIRE PATTON BOGGS",
		},
		Websites: []string{
			"squirepattonboggs.com",
		},
	},
	{
		CanonicalName: "Taft Stettinius & Hollister",
		NameVariations: []string{
			"Taft Stettinius & Hollister",
			"Taft Law",
			"TAFT",
		},
		Websites: []string{
			"taftlaw.com",
		},
	},
	{
		CanonicalName: "Holley Pearson Farrer",
		NameVariations: []string{
			"Holley Pearson Farrer",
			"Holley Pearson Farrer & Associates",
		},
		Websites: []string{
			"holleypearsonfarrer.com",
		},
	},
	{
		CanonicalName: "Hinckley Allen",
		NameVariations: []string{
			"Hinckley Allen",
			"HINCKLEY ALLEN",
			"Hinckley Allen LLP",
		},
		Websites: []string{
			"hinckleyallen.com",
			"www.hinckleyallen.com",
		},
	},
	{
		CanonicalName: "Calfee Halter & Griswold",
		NameVariations: []string{
			"Calfee Halter & Griswold",
			"Calfee",
			"CALFEE",
			"Calfee Law",
		},
		Websites: []string{
			"calfee.com",
		},
	},
	{
		CanonicalName: "Friday Eldredge & Clark",
		NameVariations: []string{
			"Friday Eldredge & Clark",
			"Friday Firm",
			"FRIDAY",
			"Friday Law",
		},
		Websites: []string{
			"fridayfirm.com",
		},
	},
	{
		CanonicalName: "Llorente & Heckler",
		NameVariations: []string{
			"Llorente & Heckler",
			"Llorente and Heckler",
			"LLORENTE HECKLER",
		},
		Websites: []string{
			"llorenteheckler.com",
		},
	},
	{
		CanonicalName: "Turner Law",
		NameVariations: []string{
			"Turner Law",
			"Turner Law PC",
			"TURNER LAW",
		},
		Websites: []string{
			"turnerlawpc.com",
		},
	},
	{
		CanonicalName: "Barclay Damon",
		NameVariations: []string{
			"Barclay Damon",
			"Barclay Damon LLP",
			"BARCLAY DAMON",
		},
		Websites: []string{
			"barclaydamon.com",
		},
	},
	{
		CanonicalName: "Best Best & Krieger",
		NameVariations: []string{
			"Best Best & Krieger",
			"BBK Law",
			"BB&K",
			"Best Best and Krieger",
		},
		Websites: []string{
			"bbklaw.com",
		},
	},
	{
		CanonicalName: "Buchanan Ingersoll & Rooney",
		NameVariations: []string{
			"Buchanan Ingersoll & Rooney",
			"Buchanan Ingersoll",
			"BIPC",
			"Buchanan Law",
		},
		Websites: []string{
			"bipc.com",
		},
	},
	{
		CanonicalName: "Bond Schoeneck & King",
		NameVariations: []string{
			"Bond Schoeneck & King",
			"Bond Schoeneck",
			"BSK Law",
			"BSK",
		},
		Websites: []string{
			"bsk.com",
		},
	},
	{
		CanonicalName: "Butler Snow",
		NameVariations: []string{
			"Butler Snow",
			"Butler Snow LLP",
			"BUTLER SNOW",
		},
		Websites: []string{
			"butlersnow.com",
		},
	},
	{
		CanonicalName: "Cozen O'Connor",
		NameVariations: []string{
			"Cozen O'Connor",
			"Cozen",
			"COZEN",
			"Cozen O'Connor PC",
		},
		Websites: []string{
			"cozen.com",
		},
	},
	{
		CanonicalName: "Dilworth Paxson",
		NameVariations: []string{
			"Dilworth Paxson",
			"Dilworth",
			"DILWORTH",
			"Dilworth Paxson LLP",
		},
		Websites: []string{
			"dilworthlaw.com",
		},
	},
	{
		CanonicalName: "D. Seaton & Associates",
		NameVariations: []string{
			"D. Seaton & Associates",
			"D Seaton",
			"D. Seaton",
			"Seaton & Associates",
		},
		Websites: []string{
			"dseatonaa.com",
		},
	},
	{
		CanonicalName: "Eckert Seamans",
		NameVariations: []string{
			"Eckert Seamans",
			"Eckert Seamans Cherin & Mellott",
			"ECKERT SEAMANS",
		},
		Websites: []string{
			"eckertseamans.com",
		},
	},
	{
		CanonicalName: "Foster Garvey",
		NameVariations: []string{
			"Foster Garvey",
			"Foster Garvey PC",
			"FOSTER GARVEY",
			"Foster Law",
		},
		Websites: []string{
			"foster.com",
		},
	},
	{
		CanonicalName: "Frost Brown Todd",
		NameVariations: []string{
			"Frost Brown Todd",
			"Frost Brown Todd LLC",
			"FBT Law",
			"FROST BROWN TODD",
		},
		Websites: []string{
			"frostbrowntodd.com",
		},
	},
	{
		CanonicalName: "Fryberger Buchanan",
		NameVariations: []string{
			"Fryberger Buchanan",
			"Fryberger",
			"FRYBERGER",
			"Fryberger Law",
		},
		Websites: []string{
			"fryberger.com",
		},
	},
	{
		CanonicalName: "Gordon Rees Scully Mansukhani",
		NameVariations: []string{
			"Gordon Rees Scully Mansukhani",
			"Gordon & Rees",
			"GRSM",
			"GPW Law",
		},
		Websites: []string{
			"gpwlawfirm.com",
		},
	},
	{
		CanonicalName: "GrayRobinson",
		NameVariations: []string{
			"GrayRobinson",
			"Gray Robinson",
			"GRAY ROBINSON",
			"GrayRobinson PA",
		},
		Websites: []string{
			"gray-robinson.com",
		},
	},
	{
		CanonicalName: "Greensfelder",
		NameVariations: []string{
			"Greensfelder",
			"Greensfelder, Hemker & Gale",
			"GREENSFELDER",
			"Greensfelder Law",
		},
		Websites: []string{
			"greensfelder.com",
		},
	},
	{
		CanonicalName: "Greenberg Traurig",
		NameVariations: []string{
			"Greenberg Traurig",
			"GT Law",
			"GREENBERG TRAURIG",
			"Greenberg Traurig LLP",
		},
		Websites: []string{
			"gtlaw.com",
		},
	},
	{
		CanonicalName: "Hall Render",
		NameVariations: []string{
			"Hall Render",
			"Hall Render Killian Heath & Lyman",
			"HALL RENDER",
			"Hall Render Law",
		},
		Websites: []string{
			"hallrender.com",
		},
	},
	{
		CanonicalName: "Hillis Clark Martin & Peterson",
		NameVariations: []string{
			"Hillis Clark Martin & Peterson",
			"HCMP",
			"Hillis Clark",
			"HCMP Law",
		},
		Websites: []string{
			"hcmp.com",
		},
	},
	{
		CanonicalName: "Ice Miller",
		NameVariations: []string{
			"Ice Miller",
			"Ice Miller LLP",
			"ICE MILLER",
			"Ice Miller Law",
		},
		Websites: []string{
			"icemiller.com",
		},
	},
	{
		CanonicalName: "Jones Walker",
		NameVariations: []string{
			"Jones Walker",
			"Jones Walker LLP",
			"JONES WALKER",
			"Jones Walker Law",
		},
		Websites: []string{
			"joneswalker.com",
		},
	},
	{
		CanonicalName: "Jackson Walker",
		NameVariations: []string{
			"Jackson Walker",
			"Jackson Walker LLP",
			"JACKSON WALKER",
			"JW Law",
		},
		Websites: []string{
			"jw.com",
		},
	},
	{
		CanonicalName: "Kelly Hart",
		NameVariations: []string{
			"Kelly Hart",
			"Kelly Hart & Hallman",
			"KELLY HART",
			"Kelly Hart Law",
		},
		Websites: []string{
			"kellyhart.com",
		},
	},
	{
		CanonicalName: "K&L Gates",
		NameVariations: []string{
			"K&L Gates",
			"KL Gates",
			"K AND L GATES",
			"K&L Gates LLP",
		},
		Websites: []string{
			"klgates.com",
		},
	},
	{
		CanonicalName: "King & Spalding",
		NameVariations: []string{
			"King & Spalding",
			"King and Spalding",
			"KING & SPALDING",
			"King & Spalding LLP",
		},
		Websites: []string{
			"kslaw.com",
		},
	},
	{
		CanonicalName: "Locke Lord",
		NameVariations: []string{
			"Locke Lord",
			"Locke Lord LLP",
			"LOCKE LORD",
			"Locke Lord Law",
		},
		Websites: []string{
			"lockelord.com",
		},
	},
	{
		CanonicalName: "Maynard Cooper & Gale",
		NameVariations: []string{
			"Maynard Cooper & Gale",
			"Maynard Cooper",
			"MAYNARD COOPER",
			"Maynard Law",
		},
		Websites: []string{
			"maynardcooper.com",
		},
	},
	{
		CanonicalName: "Miller Canfield",
		NameVariations: []string{
			"Miller Canfield",
			"Miller, Canfield, Paddock and Stone",
			"MILLER CANFIELD",
			"Miller Canfield Law",
		},
		Websites: []string{
			"millercanfield.com",
		},
	},
	{
		CanonicalName: "Modrall Sperling",
		NameVariations: []string{
			"Modrall Sperling",
			"Modrall",
			"MODRALL",
			"Modrall Law",
		},
		Websites: []string{
			"modrall.com",
		},
	},
	{
		CanonicalName: "Nixon Peabody",
		NameVariations: []string{
			"Nixon Peabody",
			"Nixon Peabody LLP",
			"NIXON PEABODY",
			"Nixon Law",
		},
		Websites: []string{
			"nixonpeabody.com",
		},
	},
	{
		CanonicalName: "Pacifica Law Group",
		NameVariations: []string{
			"Pacifica Law Group",
			"Pacifica Law",
			"PACIFICA",
			"Pacifica Legal",
		},
		Websites: []string{
			"pacificalawgroup.com",
		},
	},
	{
		CanonicalName: "Parker Poe",
		NameVariations: []string{
			"Parker Poe",
			"Parker Poe Adams & Bernstein",
			"PARKER POE",
			"Parker Poe Law",
		},
		Websites: []string{
			"parkerpoe.com",
		},
	},
	{
		CanonicalName: "Polsinelli",
		NameVariations: []string{
			"Polsinelli",
			"Polsinelli PC",
			"POLSINELLI",
			"Polsinelli Law",
		},
		Websites: []string{
			"polsinelli.com",
		},
	},
	{
		CanonicalName: "Pope Flynn",
		NameVariations: []string{
			"Pope Flynn",
			"Pope Flynn Group",
			"POPE FLYNN",
			"Pope Flynn LLC",
		},
		Websites: []string{
			"popeflynn.com",
		},
	},
	{
		CanonicalName: "Pullman & Comley",
		NameVariations: []string{
			"Pullman & Comley",
			"Pullman & Comley LLC",
			"PULLMAN",
			"Pullman Law",
		},
		Websites: []string{
			"pullcom.com",
		},
	},
	{
		CanonicalName: "Quilling Selander",
		NameVariations: []string{
			"Quilling Selander",
			"Quilling, Selander, Lownds, Winslett & Moser",
			"QUILLING",
			"QT Law",
		},
		Websites: []string{
			"qtllp.com",
		},
	},
	{
		CanonicalName: "Ropes & Gray",
		NameVariations: []string{
			"Ropes & Gray",
			"Ropes and Gray",
			"ROPES & GRAY",
			"Ropes & Gray LLP",
		},
		Websites: []string{
			"ropesgray.com",
		},
	},
	{
		CanonicalName: "Savage Law Partners",
		NameVariations: []string{
			"Savage Law Partners",
			"Savage Law",
			"SAVAGE LAW",
			"Savage Law Partners LLP",
		},
		Websites: []string{
			"savagelawpartners.com",
		},
	},
	{
		CanonicalName: "Smith Gambrell & Russell",
		NameVariations: []string{
			"Smith Gambrell & Russell",
			"Smith Gambrell",
			"SGR Law",
			"SGR",
		},
		Websites: []string{
			"sgrlaw.com",
		},
	},
	{
		CanonicalName: "Sherman & Howard",
		NameVariations: []string{
			"Sherman & Howard",
			"Sherman and Howard",
			"SHERMAN HOWARD",
			"Sherman & Howard LLC",
		},
		Websites: []string{
			"shermanhoward.com",
		},
	},
	{
		CanonicalName: "Stradling Yocca Carlson & Rauth",
		NameVariations: []string{
			"Stradling Yocca Carlson & Rauth",
			"Stradling",
			"SYCR",
			"Stradling Law",
		},
		Websites: []string{
			"sycr.com",
		},
	},
	{
		CanonicalName: "Thompson Hine",
		NameVariations: []string{
			"Thompson Hine",
			"Thompson Hine LLP",
			"THOMPSON HINE",
			"Thompson Law",
		},
		Websites: []string{
			"thompsonhine.com",
		},
	},
}
