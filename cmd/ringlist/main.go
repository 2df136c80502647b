package main

import (
	"os"

	"github.com/Asutorufa/ringlist/pkg/log"
	"github.com/Asutorufa/ringlist/pkg/ringlist"
)

func main() {
	l := ringlist.New[int]()
	for i := 1; i < 10; i++ {
		l.Add(i)
	}

	log.Infoln("Chaining..")
	first, err := l.Head()
	if err != nil {
		log.Errorln(err)
		os.Exit(1)
	}
	n := first
	for i := 0; i < 3; i++ {
		if n, err = n.Next(); err != nil {
			log.Errorln(err)
			os.Exit(1)
		}
	}
	for i := 0; i < 3; i++ {
		if n, err = n.Prev(); err != nil {
			log.Errorln(err)
			os.Exit(1)
		}
	}
	log.Infof("Value:%d", n.Value)

	log.Infoln("Forward..")
	for n := range l.All() {
		report(l, n)
		if err := n.Mutate(4 * n.Value); err != nil {
			log.Errorln(err)
			os.Exit(1)
		}
	}

	log.Infoln("Backward..")
	for n := range l.Backward() {
		report(l, n)
	}
}

func report(l *ringlist.List[int], n ringlist.Node[int]) {
	isHead, err := l.IsHead(n)
	if err != nil {
		log.Errorln(err)
		os.Exit(1)
	}
	isTail, err := l.IsTail(n)
	if err != nil {
		log.Errorln(err)
		os.Exit(1)
	}

	switch {
	case isHead:
		log.Infof("Head:%d", n.Value)
	case isTail:
		log.Infof("Tail:%d", n.Value)
	}
}
