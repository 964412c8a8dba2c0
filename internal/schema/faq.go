// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package schema

import "github.com/lafusta/lafusta-go/internal/locale"

// faqFallback is the locale whose defaults answer for unknown locales.
const faqFallback = locale.ES

// defaultFAQs holds the three canonical questions per locale. A test
// enforces that every member of locale.All has an entry.
var defaultFAQs = map[locale.Locale][]FAQ{
	locale.ES: {
		{
			Question: "¿Dónde está ubicado el restaurante?",
			Answer:   "Restaurant La Fusta está ubicado en una zona privilegiada con fácil acceso.",
		},
		{
			Question: "¿Qué tipo de cocina ofrecen?",
			Answer:   "Ofrecemos cocina mediterránea auténtica con especialidades del mar y de la montaña, utilizando productos frescos de calidad.",
		},
		{
			Question: "¿Es necesario reservar?",
			Answer:   "Recomendamos reservar con antelación para asegurar su mesa, especialmente en fines de semana y temporada alta.",
		},
	},
	locale.EN: {
		{
			Question: "Where is the restaurant located?",
			Answer:   "Restaurant La Fusta is located in a privileged area with easy access.",
		},
		{
			Question: "What type of cuisine do you offer?",
			Answer:   "We offer authentic Mediterranean cuisine with specialties from the sea and mountains, using fresh quality products.",
		},
		{
			Question: "Do I need to make a reservation?",
			Answer:   "We recommend booking in advance to secure your table, especially on weekends and high season.",
		},
	},
	locale.CA: {
		{
			Question: "On està ubicat el restaurant?",
			Answer:   "Restaurant La Fusta està ubicat en una zona privilegiada amb fàcil accés.",
		},
		{
			Question: "Quin tipus de cuina oferiu?",
			Answer:   "Oferim cuina mediterrània autèntica amb especialitats del mar i de la muntanya, utilitzant productes frescos de qualitat.",
		},
		{
			Question: "És necessari reservar?",
			Answer:   "Recomanem reservar amb antelació per assegurar la vostra taula, especialment els caps de setmana i temporada alta.",
		},
	},
	locale.DE: {
		{
			Question: "Wo befindet sich das Restaurant?",
			Answer:   "Restaurant La Fusta befindet sich in einer privilegierten Lage mit einfachem Zugang.",
		},
		{
			Question: "Welche Art von Küche bieten Sie an?",
			Answer:   "Wir bieten authentische mediterrane Küche mit Spezialitäten aus dem Meer und den Bergen, unter Verwendung frischer Qualitätsprodukte.",
		},
		{
			Question: "Muss ich reservieren?",
			Answer:   "Wir empfehlen, im Voraus zu buchen, um Ihren Tisch zu sichern, besonders an Wochenenden und in der Hochsaison.",
		},
	},
	locale.NL: {
		{
			Question: "Waar is het restaurant gevestigd?",
			Answer:   "Restaurant La Fusta is gevestigd op een bevoorrechte locatie met gemakkelijke toegang.",
		},
		{
			Question: "Welk type keuken bieden jullie aan?",
			Answer:   "We bieden authentieke mediterrane keuken met specialiteiten uit de zee en de bergen, met verse kwaliteitsproducten.",
		},
		{
			Question: "Moet ik reserveren?",
			Answer:   "We raden aan om vooraf te reserveren om uw tafel te garanderen, vooral in het weekend en het hoogseizoen.",
		},
	},
}

// DefaultFAQs returns a copy of the default FAQ set for loc, or the Spanish
// set when loc has none.
func DefaultFAQs(loc locale.Locale) []FAQ {
	set, ok := defaultFAQs[loc]
	if !ok {
		set = defaultFAQs[faqFallback]
	}
	return append([]FAQ(nil), set...)
}
