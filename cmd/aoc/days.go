package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvpuzzle/listdist"
	"github.com/katalvlaran/lvpuzzle/memscan"
	"github.com/katalvlaran/lvpuzzle/pageorder"
	"github.com/katalvlaran/lvpuzzle/reports"
	"github.com/katalvlaran/lvpuzzle/wordgrid"
)

// solver turns one puzzle input into the answer lines to print.
type solver func(input string, cfg config) ([]string, error)

// days maps a day number to its solver.
var days = map[int]solver{
	1: day1,
	2: day2,
	3: day3,
	4: day4,
	5: day5,
}

func day1(input string, _ config) ([]string, error) {
	left, right, err := listdist.Parse(input)
	if err != nil {
		return nil, err
	}
	total, err := listdist.TotalDistance(left, right)
	if err != nil {
		return nil, err
	}

	return []string{fmt.Sprintf("The total difference is %d", total)}, nil
}

func day2(input string, _ config) ([]string, error) {
	rs, err := reports.Parse(input)
	if err != nil {
		return nil, err
	}
	safe := reports.CountSafe(rs, reports.DefaultRules()...)

	return []string{fmt.Sprintf("Number of safe reports: %d", safe)}, nil
}

func day3(input string, _ config) ([]string, error) {
	p := memscan.NewProgram(input)
	log.WithField("instructions", len(p.Instructions())).Debug("memory scanned")

	return []string{fmt.Sprintf("The sum of the results is: %d", p.Sum())}, nil
}

func day4(input string, cfg config) ([]string, error) {
	g := wordgrid.Parse(input)
	n, err := g.CountAllMatches(cfg.word)
	if err != nil {
		return nil, err
	}

	return []string{fmt.Sprintf("Total matches found for %s: %d", cfg.word, n)}, nil
}

func day5(input string, cfg config) ([]string, error) {
	rules, updates, err := pageorder.Parse(input)
	if err != nil {
		return nil, err
	}
	v := pageorder.NewVerifier(rules)
	log.WithFields(logrus.Fields{"rules": len(rules), "updates": len(updates)}).Debug("manual parsed")

	sum, err := pageorder.SumValidMiddles(v, updates)
	if err != nil {
		return nil, err
	}
	out := []string{fmt.Sprintf("Sum of the middle page numbers: %d", sum)}
	if cfg.reorder {
		fixed, err := pageorder.SumReorderedMiddles(v, updates)
		if err != nil {
			return nil, err
		}
		out = append(out, fmt.Sprintf("Sum of the middle page numbers after reordering: %d", fixed))
	}

	return out, nil
}
