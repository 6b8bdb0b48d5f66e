package app

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
)

func promptList[T any](list []T, start int, mapper func(T) string) int {
	for i, el := range list {
		fmt.Printf("(%d)\t%s\n", start+i, mapper(el))
	}

	var res string
	var choice int
	for {
		fmt.Print("Your choice: ")
		_, err := fmt.Scanf("%s", &res)
		if err != nil {
			fmt.Printf("Try again %s\n", err)
			continue
		}
		choice, err = strconv.Atoi(res)
		if err != nil {
			fmt.Printf("Try again %s\n", err)
			continue
		}

		if choice >= start && choice < len(list)+start {
			return choice
		}
	}
}

func promptPlayer(prompt string) bool {
	var res string
	for {
		fmt.Printf("%s (y/n): ", prompt)
		_, err := fmt.Scanln(&res)
		if err == nil {
			if res == "y" {
				return true
			} else if res == "n" {
				return false
			}
		} else {
			log.Error("app [promptPlayer]", "err", err, "res", res)
		}
	}
}

// promptEndpoints reads a "A1 A4" style pair of board tokens.
func promptEndpoints(prompt string) (string, string, bool) {
	var startTok, endTok string
	fmt.Printf("%s: ", prompt)
	if _, err := fmt.Scanln(&startTok, &endTok); err != nil {
		log.Debug("app [promptEndpoints]", "err", err)
		return "", "", false
	}
	return startTok, endTok, true
}
