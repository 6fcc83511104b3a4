package main

import (
	"testing"

	"lito/internal/config"
	"lito/internal/geom"
	"lito/internal/schem"
)

func TestReplaceDefaults(t *testing.T) {
	cfg := config.DefaultConfig()

	from, to := replaceDefaults(cfg, "", "")
	if from != "minecraft:lime_wool" || to != "minecraft:air" {
		t.Errorf("bare defaults = %q -> %q, want lime_wool -> air", from, to)
	}

	from, to = replaceDefaults(cfg, "minecraft:glass", "")
	if from != "minecraft:glass" || to != "minecraft:air" {
		t.Errorf("from flag = %q -> %q, want glass -> air", from, to)
	}

	from, to = replaceDefaults(cfg, "", "minecraft:stone")
	if from != "minecraft:lime_wool" || to != "minecraft:stone" {
		t.Errorf("to flag = %q -> %q, want lime_wool -> stone", from, to)
	}

	cfg.Replace.From = "minecraft:scaffolding"
	from, _ = replaceDefaults(cfg, "", "")
	if from != "minecraft:scaffolding" {
		t.Errorf("config from = %q, want scaffolding", from)
	}
}

func TestNameOutput(t *testing.T) {
	s := schem.NewStructure("farm", "", "anon")
	s.Regions = append(s.Regions, schem.NewRegion("main", geom.Position{}, geom.Position{}))

	nameOutput(s, "builds/farm-pruned.litematic")
	if s.Name != "farm-pruned" {
		t.Errorf("Name = %q, want %q", s.Name, "farm-pruned")
	}

	nameOutput(s, "plain-name")
	if s.Name != "plain-name" {
		t.Errorf("Name = %q, want %q", s.Name, "plain-name")
	}
}
