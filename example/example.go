package main

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/lanrat/classicsort"
)

var count = 10

type cat struct {
	weight int
}

func (c cat) Less(other cat) bool {
	return other.weight > c.weight
}

func main() {
	logrus.SetLevel(logrus.DebugLevel)
	config := &classicsort.Config{
		Verbose:  true,
		Reporter: classicsort.NewLogReporter(nil),
	}

	// sort the same unsorted data with every engine
	input := make([]int, count)
	for i := range input {
		input[i] = rand.Intn(100)
	}
	for _, alg := range classicsort.Algorithms() {
		data := append([]int(nil), input...)
		stats, err := classicsort.Ordered(alg, data, config)
		if err != nil {
			fmt.Printf("err: %s", err.Error())
			return
		}
		fmt.Printf("%v\n%s\n", data, stats)
	}

	// user defined types only need a Less method
	cats := []cat{{12}, {4}, {9}, {1}}
	if _, err := classicsort.Records(classicsort.BubbleSort, cats, nil); err != nil {
		fmt.Printf("err: %s", err.Error())
		return
	}
	fmt.Println(cats)
}
