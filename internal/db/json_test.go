package db_test

import (
	"encoding/json"

	"handkeeper/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JSON", func() {
	It("stores nil as NULL", func() {
		v, err := db.JSON(nil).Value()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNil())
	})

	It("stores raw text verbatim", func() {
		v, err := db.JSON(`{"b":1,"a":[2]}`).Value()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(`{"b":1,"a":[2]}`))
	})

	It("scans bytes and strings", func() {
		var j db.JSON
		Expect(j.Scan([]byte(`[1,2]`))).To(Succeed())
		Expect(string(j)).To(Equal(`[1,2]`))

		Expect(j.Scan(`{"x":true}`)).To(Succeed())
		Expect(string(j)).To(Equal(`{"x":true}`))

		Expect(j.Scan(nil)).To(Succeed())
		Expect(j).To(BeNil())
	})

	It("rejects unsupported column types", func() {
		var j db.JSON
		Expect(j.Scan(42)).NotTo(Succeed())
	})

	It("encodes nil as null and keeps content otherwise", func() {
		out, err := json.Marshal(struct {
			A db.JSON `json:"a"`
			B db.JSON `json:"b"`
		}{B: db.JSON(`{"k":"v"}`)})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(`{"a":null,"b":{"k":"v"}}`))
	})

	It("decodes null as nil", func() {
		var holder struct {
			A db.JSON `json:"a"`
		}
		Expect(json.Unmarshal([]byte(`{"a":null}`), &holder)).To(Succeed())
		Expect(holder.A).To(BeNil())
	})
})
