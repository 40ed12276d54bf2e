// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// DefaultDocument returns the built-in proposal content. It seeds the
// "default" row on first start and is the fallback when that row cannot be
// read. The content is the agency's F1-themed sample proposal.
func DefaultDocument() *ProposalDocument {
	theme := DefaultTheme()
	return &ProposalDocument{
		LogoURL:  "https://firebasestorage.googleapis.com/v0/b/drossmediapro.appspot.com/o/logo%20lati%20actual%202023%20(2)-04.png?alt=media&token=6a2bb838-c3a1-4162-b438-603bd74d836a",
		Template: TemplateClassic,
		Theme:    &theme,
		Status:   StatusDraft,
		Hero: Hero{
			BackgroundImageURL: "https://cdn.magicdecor.in/com/2025/01/22172354/Red-Formula-One-Car-Wallpaper-Mural.jpg",
			Subtitle:           "Propuesta de Lanzamiento",
			Title:              "Promoción 2025",
			Description:        "Es para nosotros un honor formar parte de este momento inolvidable. Con 15 años de experiencia, garantizamos un resultado óptimo que quedará para siempre en los recuerdos de cada uno de los participantes.",
			ClientLabel:        "Cliente",
			ClientName:         "Politécnico Aragón, promoción",
			ActivityLabel:      "Actividad",
			ActivityName:       "Lanzamiento de promoción",
			ThemeLabel:         "Tema",
			ThemeName:          "Circuito de Carreras (F1)",
		},
		Proposal: ProposalSection{
			Title: "Propuesta de Ambientación",
			Cards: []ProposalCard{
				{
					Title:       "Decoración de Entrada: Pista de Carreras",
					Description: "Montaje de un camino simulando una pista de carreras, con columnas de cuadros blancos y negros. Una simulación de pista negra con líneas blancas, gomas y banderines para que los invitados sientan que están entrando a una carrera de Fórmula 1.",
					ImageURL:    "https://i.pinimg.com/1200x/00/53/92/005392f76e2c520aa9244466cab10066.jpg",
				},
				{
					Title:       "Decoración del Escenario: Meta de Carrera",
					Description: "Escenografía para el fondo del escenario con tema de carreras. Recrearemos una meta con un letrero de 'FINISH' y otros elementos como semáforos, señalizaciones, banderines y gomas de colores para simular la llegada a la meta.",
					ImageURL:    "https://i.pinimg.com/1200x/d8/2c/0d/d82c0d5fd203742288c4d02d5eca6dbe.jpg",
				},
			},
		},
		Services: ServicesSection{
			Title: "Producción Técnica y Efectos",
			Cards: []ServiceCard{
				{
					Enabled:  true,
					Icon:     IconMusic,
					Title:    "Sonido Profesional",
					Items:    []string{"DJ Profesional", "Bocinas Amplificadas", "Bajos Amplificados", "Consola Mixer", "Micrófonos Inalámbricos"},
					ImageURL: "https://i.pinimg.com/1200x/03/a5/c2/03a5c2680c42b8749977c81f0530f3dd.jpg",
				},
				{
					Enabled:  true,
					Icon:     IconSparkles,
					Title:    "Efectos Especiales",
					Items:    []string{"Máquina de Confeti", "Máquina de Humo", "Pirotecnia Fría"},
					ImageURL: "https://i.pinimg.com/736x/0b/60/52/0b60522f443304a8c79fe2c141aa30c1.jpg",
				},
				{
					Enabled:  true,
					Icon:     IconUserCheck,
					Title:    "Personal Técnico",
					Items:    []string{"Técnico para Sonido", "Técnico para Efectos"},
					ImageURL: "https://i.pinimg.com/1200x/3f/ff/e1/3fffe126f54f0ed032a68095cec1d1ba.jpg",
				},
				{
					Enabled:  true,
					Icon:     IconConstruction,
					Title:    "Estructuras Truss",
					Items:    []string{"Estructura para Escenario", "Estructura para Área de Fotos"},
					ImageURL: "https://i.pinimg.com/1200x/07/c9/61/07c961d3018391638bc2581fdb689402.jpg",
				},
			},
		},
		Features: FeaturesSection{
			Title: "Experiencias Adicionales",
			Items: []FeatureItem{
				{
					Icon:        IconTent,
					Title:       "Área de Fotos Interactiva",
					Description: "Una escenografía acorde al tema del evento para que los invitados se tomen fotos. Estará colocada en los laterales del escenario central, siendo completamente interactiva.",
					ImageURL:    "https://i.pinimg.com/736x/a5/81/54/a58154ebb4f370385ef39c2d6f0ccd62.jpg",
					Reverse:     false,
				},
				{
					Icon:        IconVideo,
					Title:       "Plataforma Videobook 360",
					Description: "Se montará un Videobook 360 en la entrada para que los invitados puedan grabar videos al llegar y luego seguir la 'carrera' hasta la meta, creando recuerdos dinámicos desde el primer momento.",
					ImageURL:    "https://i.pinimg.com/1200x/87/f9/ce/87f9ce883d23b69fbf8434b471cbdcc6.jpg",
					Reverse:     true,
				},
				{
					Icon:        IconSparkles,
					Title:       "Letras Gigantes 'PROMO 2025'",
					Description: "Para destacar el año de la promoción, colocaremos letras iluminadas con el texto 'PROMO 2025', dejando plasmado este año en los recuerdos de la promoción de una forma espectacular.",
					ImageURL:    "https://m.media-amazon.com/images/I/71CrT-1QdEL._UF894,1000_QL80_.jpg",
					Reverse:     false,
				},
			},
		},
		Included: IncludedSection{
			Title:     "Todo Incluido",
			ListTitle: "Otros Servicios Incluidos",
			Items: []IncludedItem{
				{Icon: IconCamera, Text: "Fotógrafo para cubrir el evento"},
				{Icon: IconCheckCircle, Text: "Fotos generales del evento"},
				{Icon: IconPackage, Text: "Videos para redes sociales"},
				{Icon: IconTruck, Text: "Montaje, desmontaje y transporte de equipos"},
				{Icon: IconUsers, Text: "Equipo de staff para acompañar en el evento"},
			},
			CostTitle:       "Costo del Lanzamiento",
			Cost:            "RD $160,000",
			CostDescription: "Un paquete completo para un evento inolvidable.",
			CTAButtonText:   "Contactar Ahora",
		},
		Footer: Footer{
			LogoAlt:      "Lati K Publicidad Logo",
			PhoneLabel:   "Cel/Whatsapp",
			PhoneNumber:  "+1 829 286 2601",
			EmailLabel:   "Email",
			EmailAddress: "LATIKPUBLICIDAD@GMAIL.COM",
			AddressLabel: "Dirección",
			Address:      "C/ Principal #20, 1er Nivel, Guaricano, Villa Mella, SDN",
			Copyright:    "© {year} Lati K Publicidad. Todos los derechos reservados.",
		},
	}
}
