// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"strings"
)

const suggestSystemPrompt = `Eres un redactor publicitario para propuestas comerciales de desarrollo web.
Escribes en español, con un tono profesional y cercano.
Responde únicamente con el texto sugerido, sin comillas ni explicaciones.`

// Suggest asks the active provider for replacement copy for a single
// editable field of a proposal. The field is identified by its dot path
// (e.g. "hero.title") and the current text is passed so the model can
// keep length and intent.
func Suggest(ctx context.Context, reg *Registry, field, current, clientName string) (string, error) {
	p, err := reg.Active()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Campo a redactar: %s\n", field)
	if clientName != "" {
		fmt.Fprintf(&b, "Cliente: %s\n", clientName)
	}
	if current != "" {
		fmt.Fprintf(&b, "Texto actual (mejóralo manteniendo una longitud similar):\n%s\n", current)
	} else {
		b.WriteString("No hay texto actual; redacta uno breve y convincente.\n")
	}

	out, err := p.Generate(ctx, suggestSystemPrompt, b.String())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
