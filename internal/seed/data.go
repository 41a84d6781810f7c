package seed

import (
	"time"

	"github.com/seifeddinerezgui/gethrought/internal/model"
)

const contactEmail = "contact@gethrought.com"

func ptr(s string) *string { return &s }

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Solutions returns the four service lines, in display order.
func Solutions() []model.Solution {
	return []model.Solution{
		{
			Order:       1,
			Title:       "Audit légal et contractuel",
			Description: "Délivrer l'avis ou la certification d'un expert indépendant",
			ImageURL:    "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Link:        "/solutions/audit-legal-et-contractuel",
		},
		{
			Order:       2,
			Title:       "Conseil financier",
			Description: "Supporter les prises de décision stratégiques et financières",
			ImageURL:    "https://images.unsplash.com/photo-1551836022-d5d88e9218df?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Link:        "/solutions/conseil-financier",
		},
		{
			Order:       3,
			Title:       "Conseil et support opérationnels",
			Description: "Optimiser et transformer les organisations et les SI",
			ImageURL:    "https://images.unsplash.com/photo-1600880292203-757bb62b4baf?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Link:        "/solutions/conseil-et-support-operationnels",
		},
		{
			Order:       4,
			Title:       "Maîtrise des risques et compliance",
			Description: "Sécuriser les organisations et les organes de gouvernance",
			ImageURL:    "https://images.unsplash.com/photo-1521791055366-0d553872125f?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Link:        "/solutions/maitrise-des-risques-et-compliance",
		},
	}
}

// Locations returns the offices shown on the international page.
func Locations() []model.Location {
	return []model.Location{
		{
			Title: "Paris Île-de-France", Address: "11, rue de Laborde", City: "Paris", PostalCode: "75008",
			Country: "France", Phone: "+33 (0) 1 40 08 99 50", Email: contactEmail,
			Latitude: ptr("48.8746"), Longitude: ptr("2.3220"),
		},
		{
			Title: "Auvergne-Rhône-Alpes", Address: "32, rue de la République", City: "Lyon", PostalCode: "69002",
			Country: "France", Phone: "+33 (0) 1 40 08 99 50", Email: contactEmail,
			Latitude: ptr("45.7640"), Longitude: ptr("4.8357"),
		},
		{
			Title: "Sud-Est", Address: "1165 rue Jean-René Guillibert Gauthier de La Lauzière", City: "Aix-en-Provence", PostalCode: "13290",
			Country: "France", Phone: "+33 (0) 1 40 08 99 50", Email: contactEmail,
			Latitude: ptr("43.4764"), Longitude: ptr("5.3871"),
		},
		{
			Title: "Sud-Ouest", Address: "2 rue Auber", City: "Toulouse", PostalCode: "31000",
			Country: "France", Phone: "+33 (0) 1 40 08 99 50", Email: contactEmail,
			Latitude: ptr("43.6044"), Longitude: ptr("1.4442"),
		},
		{
			Title: "Ouest", Address: "28 boulevard du Colombier", City: "Rennes", PostalCode: "35000",
			Country: "France", Phone: "+33 (0) 1 40 08 99 50", Email: contactEmail,
			Latitude: ptr("48.1051"), Longitude: ptr("-1.6778"),
		},
		{
			Title: "Nord-Ouest", Address: "154, rue Victor Hugo", City: "Le Havre", PostalCode: "76600",
			Country: "France", Phone: "+33 (0) 1 40 08 99 50", Email: contactEmail,
			Latitude: ptr("49.4938"), Longitude: ptr("0.1079"),
		},
		{
			Title: "Royaume-Uni", Address: "Exmouth House, 3-11 Pine St", City: "London", PostalCode: "EC1R 0JH",
			Country: "United Kingdom", Phone: "+44 (0) 7979 3131 03", Email: contactEmail,
			Latitude: ptr("51.5074"), Longitude: ptr("-0.1278"),
		},
		{
			Title: "Maroc", Address: "23, rue El Amaraoui Brahim (Ex Nolly)", City: "Casablanca", PostalCode: "",
			Country: "Maroc", Phone: "+212 (0) 5 22 27 63 72", Email: contactEmail,
			Latitude: ptr("33.5731"), Longitude: ptr("-7.5898"),
		},
	}
}

// Jobs returns the open positions. All of them are active.
func Jobs() []model.Job {
	return []model.Job{
		{
			Title:        "Auditeur Financier Senior H/F",
			Location:     "Paris",
			ContractType: "CDI",
			Description:  "Vous intégrerez notre équipe d'audit et participerez à des missions variées auprès de clients de différents secteurs. Une expérience de 3 à 5 ans en cabinet d'audit est requise.",
			IsActive:     true,
		},
		{
			Title:        "Consultant en Transformation Financière H/F",
			Location:     "Lyon",
			ContractType: "CDI",
			Description:  "En tant que consultant, vous accompagnerez nos clients dans leurs projets de transformation financière et d'optimisation des processus. Minimum 2 ans d'expérience en conseil.",
			IsActive:     true,
		},
		{
			Title:        "Expert-Comptable H/F",
			Location:     "Toulouse",
			ContractType: "CDI",
			Description:  "Vous interviendrez sur des missions de conseil, de production comptable et d'établissement des comptes annuels pour une clientèle variée. Diplôme d'expertise comptable exigé.",
			IsActive:     true,
		},
		{
			Title:        "Auditeur Junior H/F",
			Location:     "Paris",
			ContractType: "CDI",
			Description:  "Dans le cadre de votre fonction, vous participerez activement aux missions d'audit légal et contractuel auprès de nos clients. Débutant accepté.",
			IsActive:     true,
		},
		{
			Title:        "Responsable Consolidation H/F",
			Location:     "Lyon",
			ContractType: "CDI",
			Description:  "Vous prendrez en charge la consolidation des comptes de nos clients grands groupes et la mise en place de processus d'optimisation. 5 ans d'expérience minimum.",
			IsActive:     true,
		},
	}
}

// News returns the published articles. Three of them share the same publish date.
func News() []model.News {
	return []model.News{
		{
			Title:       "Risques et ratios des banques : un accès centralisé",
			Excerpt:     "L'Autorité Bancaire Européenne (ABE) a mis en place un hub centralisé pour faciliter l'accès aux données prudentielles des établissements financiers européens...",
			Content:     "L'Autorité Bancaire Européenne (ABE) a mis en place un hub centralisé pour faciliter l'accès aux données prudentielles des établissements financiers européens. Cette plateforme permettra aux analystes et aux régulateurs d'accéder plus facilement aux informations sur les risques et les ratios des banques, renforçant ainsi la transparence du secteur bancaire européen.",
			ImageURL:    "https://images.unsplash.com/photo-1591696205602-2f950c417cb9?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			PublishDate: day(2023, time.April, 10),
			Category:    "Banque & Assurance",
		},
		{
			Title:       "La digitalisation du reporting de durabilité toujours au programme !",
			Excerpt:     "L'EFRAG poursuit ses travaux sur la digitalisation du reporting de durabilité avec la publication d'un document de consultation sur la taxonomie XBRL...",
			Content:     "L'EFRAG poursuit ses travaux sur la digitalisation du reporting de durabilité avec la publication d'un document de consultation sur la taxonomie XBRL. Cette initiative s'inscrit dans le cadre de la directive CSRD (Corporate Sustainability Reporting Directive) qui vise à standardiser et à digitaliser les rapports de durabilité des entreprises européennes.",
			ImageURL:    "https://images.unsplash.com/photo-1618044733300-9472054094ee?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			PublishDate: day(2023, time.April, 10),
			Category:    "ESG & Développement Durable",
		},
		{
			Title:       "Dette versus fonds propres : vers un entre-deux...",
			Excerpt:     "L'IASB a publié un exposé-sondage visant à améliorer les informations fournies par les entreprises sur leurs instruments financiers présentant des caractéristiques à la fois de dette et de capitaux propres...",
			Content:     "L'IASB a publié un exposé-sondage visant à améliorer les informations fournies par les entreprises sur leurs instruments financiers présentant des caractéristiques à la fois de dette et de capitaux propres. Ces instruments hybrides, de plus en plus utilisés par les entreprises, posent des défis en termes de classification comptable et de transparence pour les investisseurs.",
			ImageURL:    "https://images.unsplash.com/photo-1563986768609-322da13575f3?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			PublishDate: day(2023, time.April, 10),
			Category:    "Comptabilité & Normes IFRS",
		},
		{
			Title:       "Les impacts de la réforme fiscale internationale sur les groupes",
			Excerpt:     "La mise en place du pilier 2 de la réforme fiscale internationale va impacter significativement les groupes multinationaux. Découvrez les principaux enjeux...",
			Content:     "La mise en place du pilier 2 de la réforme fiscale internationale, qui prévoit un taux d'imposition minimum de 15% pour les grandes entreprises multinationales, va impacter significativement la stratégie fiscale de ces groupes. Les entreprises devront adapter leur politique de prix de transfert et revoir leurs structures juridiques pour se conformer à ces nouvelles règles.",
			ImageURL:    "https://images.unsplash.com/photo-1542744173-8e7e53415bb0?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			PublishDate: day(2023, time.April, 5),
			Category:    "Fiscalité",
		},
		{
			Title:       "Nouveau référentiel d'audit : quels changements pour les commissaires aux comptes ?",
			Excerpt:     "La réforme du référentiel normatif de l'audit apporte des modifications substantielles aux pratiques professionnelles des commissaires aux comptes...",
			Content:     "La réforme du référentiel normatif de l'audit apporte des modifications substantielles aux pratiques professionnelles des commissaires aux comptes. Les nouvelles normes, qui entreront en vigueur prochainement, visent à renforcer la qualité de l'audit et à harmoniser les pratiques au niveau international. Les cabinets devront adapter leurs méthodologies et former leurs équipes à ces nouvelles exigences.",
			ImageURL:    "https://images.unsplash.com/photo-1554224155-6726b3ff858f?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			PublishDate: day(2023, time.March, 20),
			Category:    "Audit et Certification",
		},
		{
			Title:       "Actualisation des règles de consolidation : ce qui change pour les groupes",
			Excerpt:     "Le Comité de la Réglementation Comptable a publié une mise à jour des règles de consolidation applicables aux comptes consolidés selon les normes françaises...",
			Content:     "Le Comité de la Réglementation Comptable a publié une mise à jour des règles de consolidation applicables aux comptes consolidés selon les normes françaises. Ces modifications visent à simplifier certaines procédures tout en assurant une meilleure comparabilité avec les normes IFRS. Les groupes établissant leurs comptes selon les normes françaises devront se familiariser avec ces changements pour leur prochaine clôture annuelle.",
			ImageURL:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			PublishDate: day(2023, time.March, 15),
			Category:    "Comptabilité & Normes IFRS",
		},
	}
}
