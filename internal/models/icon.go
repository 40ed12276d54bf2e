// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// IconName identifies one of the icons the proposal page can render next
// to services, features, and included items.
type IconName string

const (
	IconMusic        IconName = "Music"
	IconSpeaker      IconName = "Speaker"
	IconClapperboard IconName = "Clapperboard"
	IconSparkles     IconName = "Sparkles"
	IconUserCheck    IconName = "UserCheck"
	IconConstruction IconName = "Construction"
	IconCamera       IconName = "Camera"
	IconVideo        IconName = "Video"
	IconTent         IconName = "Tent"
	IconCheckCircle  IconName = "CheckCircle"
	IconPackage      IconName = "Package"
	IconTruck        IconName = "Truck"
	IconUsers        IconName = "Users"
	IconDollarSign   IconName = "DollarSign"
)

// IconNames lists every valid icon, in the order the editor's icon picker
// shows them.
var IconNames = []IconName{
	IconMusic, IconSpeaker, IconClapperboard, IconSparkles, IconUserCheck,
	IconConstruction, IconCamera, IconVideo, IconTent, IconCheckCircle,
	IconPackage, IconTruck, IconUsers, IconDollarSign,
}

// FallbackIcon is rendered for any icon name outside the known set.
const FallbackIcon = IconSparkles

var iconSet = func() map[IconName]struct{} {
	m := make(map[IconName]struct{}, len(IconNames))
	for _, n := range IconNames {
		m[n] = struct{}{}
	}
	return m
}()

// Valid reports whether the icon name is in the known set.
func (n IconName) Valid() bool {
	_, ok := iconSet[n]
	return ok
}

// Resolve returns the icon itself when valid and the fallback otherwise.
// Unknown names never error; documents edited against a newer icon set
// still render.
func (n IconName) Resolve() IconName {
	if n.Valid() {
		return n
	}
	return FallbackIcon
}
