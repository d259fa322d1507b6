package util

import "github.com/PuerkitoBio/goquery"

// Job boards change their markup constantly, so every field is extracted
// by trying an ordered list of selectors until one yields text. These
// helpers are the whole of that strategy.

// FirstText returns the cleaned text of the first selector that matches a
// non-empty element under s.
func FirstText(s *goquery.Selection, selectors ...string) string {
	for _, sel := range selectors {
		if t := CleanText(s.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

// FirstHref returns the text and href of the first matching anchor among
// selectors. The href is returned raw; resolution happens later.
func FirstHref(s *goquery.Selection, selectors ...string) (text, href string) {
	for _, sel := range selectors {
		el := s.Find(sel).First()
		if el.Length() == 0 {
			continue
		}
		if t := CleanText(el.Text()); t != "" {
			h, _ := el.Attr("href")
			return t, h
		}
	}
	return "", ""
}

// FirstJobHref scans every anchor under s and returns the first href that
// passes the job-URL heuristic.
func FirstJobHref(s *goquery.Selection) string {
	var out string
	s.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if IsJobURL(href) {
			out = href
			return false
		}
		return true
	})
	return out
}
