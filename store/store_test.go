package store

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"trade-directory/models"
)

// newTestStore opens a fresh in-memory database per test. The shared-cache
// DSN keeps GORM's connection pool on one database.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return New(db)
}

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestCountryCRUD(t *testing.T) {
	s := newTestStore(t)

	c := models.Country{NameEnglish: "Netherlands", NameRussian: "Голландия", CountryCode: "NL"}
	require.NoError(t, s.CreateCountry(&c))
	assert.NotZero(t, c.ID)

	got, err := s.GetCountry(c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, *got)

	all, err := s.ListCountries()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	updated, err := s.UpdateCountry(c.ID, models.CountryUpdate{NameRussian: strptr("Нидерланды")})
	require.NoError(t, err)
	assert.Equal(t, "Нидерланды", updated.NameRussian)
	// untouched fields keep their values
	assert.Equal(t, "Netherlands", updated.NameEnglish)
	assert.Equal(t, "NL", updated.CountryCode)

	require.NoError(t, s.DeleteCountry(c.ID))
	_, err = s.GetCountry(c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCountryNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetCountry(42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateCountry(42, models.CountryUpdate{NameEnglish: strptr("X")})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeleteCountry(42), ErrNotFound)
}

func TestProductGroupCodeConflict(t *testing.T) {
	s := newTestStore(t)

	g := models.ProductGroup{Name: "Яблоки", Code: "APL"}
	require.NoError(t, s.CreateProductGroup(&g))

	dup := models.ProductGroup{Name: "Другие яблоки", Code: "APL"}
	assert.ErrorIs(t, s.CreateProductGroup(&dup), ErrConflict)

	groups, err := s.ListProductGroups()
	require.NoError(t, err)
	assert.Len(t, groups, 1)
}

func TestBuyerTelegramConflictAndPartialUpdate(t *testing.T) {
	s := newTestStore(t)

	b := models.Buyer{Name: "Ivan", Surname: "Petrov", Telegram: "@petrov", Email: "ivan@example.com"}
	require.NoError(t, s.CreateBuyer(&b))

	dup := models.Buyer{Name: "Petr", Surname: "Ivanov", Telegram: "@petrov"}
	assert.ErrorIs(t, s.CreateBuyer(&dup), ErrConflict)

	updated, err := s.UpdateBuyer(b.ID, models.BuyerUpdate{IsWorking: boolptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.IsWorking)
	assert.Equal(t, "Petrov", updated.Surname)
	assert.Equal(t, "@petrov", updated.Telegram)
}

func TestCountryGroupLinkLifecycle(t *testing.T) {
	s := newTestStore(t)

	country := models.Country{NameEnglish: "Netherlands", NameRussian: "Голландия", CountryCode: "NL"}
	require.NoError(t, s.CreateCountry(&country))
	group := models.ProductGroup{Name: "Яблоки", Code: "APL"}
	require.NoError(t, s.CreateProductGroup(&group))

	link, err := s.CreateCountryGroupLink("Голландия", "Яблоки")
	require.NoError(t, err)
	assert.Equal(t, country.ID, link.CountryID)
	assert.Equal(t, group.ID, link.ProductGroupID)

	// the same pair a second time is a conflict, not a second row
	_, err = s.CreateCountryGroupLink("Голландия", "Яблоки")
	assert.ErrorIs(t, err, ErrConflict)

	_, groups, err := s.CountryWithGroups(country.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Яблоки", groups[0].Name)
}

func TestCountryGroupLinkInvalidReference(t *testing.T) {
	s := newTestStore(t)

	group := models.ProductGroup{Name: "Яблоки", Code: "APL"}
	require.NoError(t, s.CreateProductGroup(&group))

	_, err := s.CreateCountryGroupLink("Атлантида", "Яблоки")
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Contains(t, err.Error(), "Атлантида")

	// no half-resolved row may have been written
	var count int64
	require.NoError(t, s.db.Model(&models.CountryProductGroupLink{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCountryGroupBuyerLink(t *testing.T) {
	s := newTestStore(t)

	country := models.Country{NameEnglish: "Ecuador", NameRussian: "Эквадор", CountryCode: "EC"}
	require.NoError(t, s.CreateCountry(&country))
	group := models.ProductGroup{Name: "Розы", Code: "ROS"}
	require.NoError(t, s.CreateProductGroup(&group))
	buyer := models.Buyer{Name: "Ivan", Surname: "Petrov", Telegram: "@petrov"}
	require.NoError(t, s.CreateBuyer(&buyer))

	link, err := s.CreateCountryGroupBuyerLink("Эквадор", "Розы", "Petrov")
	require.NoError(t, err)
	assert.Equal(t, buyer.ID, link.BuyerID)

	_, err = s.CreateCountryGroupBuyerLink("Эквадор", "Розы", "Petrov")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.CreateCountryGroupBuyerLink("Эквадор", "Розы", "Sidorov")
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestBuyersForGroupDeduplicates(t *testing.T) {
	s := newTestStore(t)

	nl := models.Country{NameEnglish: "Netherlands", NameRussian: "Голландия", CountryCode: "NL"}
	require.NoError(t, s.CreateCountry(&nl))
	ec := models.Country{NameEnglish: "Ecuador", NameRussian: "Эквадор", CountryCode: "EC"}
	require.NoError(t, s.CreateCountry(&ec))
	group := models.ProductGroup{Name: "Розы", Code: "ROS"}
	require.NoError(t, s.CreateProductGroup(&group))
	buyer := models.Buyer{Name: "Ivan", Surname: "Petrov", Telegram: "@petrov"}
	require.NoError(t, s.CreateBuyer(&buyer))

	// same buyer buys roses from two countries
	_, err := s.CreateCountryGroupBuyerLink("Голландия", "Розы", "Petrov")
	require.NoError(t, err)
	_, err = s.CreateCountryGroupBuyerLink("Эквадор", "Розы", "Petrov")
	require.NoError(t, err)

	buyers, err := s.BuyersForGroup("Розы")
	require.NoError(t, err)
	require.Len(t, buyers, 1)
	assert.Equal(t, "Petrov", buyers[0].Surname)

	_, err = s.BuyersForGroup("Тюльпаны")
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestCountryWithGroupsUnionsBothLinkTables(t *testing.T) {
	s := newTestStore(t)

	country := models.Country{NameEnglish: "Netherlands", NameRussian: "Голландия", CountryCode: "NL"}
	require.NoError(t, s.CreateCountry(&country))
	group := models.ProductGroup{Name: "Розы", Code: "ROS"}
	require.NoError(t, s.CreateProductGroup(&group))
	buyer := models.Buyer{Name: "Ivan", Surname: "Petrov", Telegram: "@petrov"}
	require.NoError(t, s.CreateBuyer(&buyer))

	// the same group linked through both the pair and the triple table
	_, err := s.CreateCountryGroupLink("Голландия", "Розы")
	require.NoError(t, err)
	_, err = s.CreateCountryGroupBuyerLink("Голландия", "Розы", "Petrov")
	require.NoError(t, err)

	_, groups, err := s.CountryWithGroups(country.ID)
	require.NoError(t, err)
	assert.Len(t, groups, 1)

	_, countries, err := s.ProductGroupWithCountries(group.ID)
	require.NoError(t, err)
	assert.Len(t, countries, 1)
}

func TestDeleteCountryCascadesLinks(t *testing.T) {
	s := newTestStore(t)

	country := models.Country{NameEnglish: "Netherlands", NameRussian: "Голландия", CountryCode: "NL"}
	require.NoError(t, s.CreateCountry(&country))
	group := models.ProductGroup{Name: "Розы", Code: "ROS"}
	require.NoError(t, s.CreateProductGroup(&group))
	buyer := models.Buyer{Name: "Ivan", Surname: "Petrov", Telegram: "@petrov"}
	require.NoError(t, s.CreateBuyer(&buyer))

	_, err := s.CreateCountryGroupLink("Голландия", "Розы")
	require.NoError(t, err)
	_, err = s.CreateCountryGroupBuyerLink("Голландия", "Розы", "Petrov")
	require.NoError(t, err)

	require.NoError(t, s.DeleteCountry(country.ID))

	var pairCount, tripleCount int64
	require.NoError(t, s.db.Model(&models.CountryProductGroupLink{}).Count(&pairCount).Error)
	require.NoError(t, s.db.Model(&models.CountryGroupBuyerLink{}).Count(&tripleCount).Error)
	assert.Zero(t, pairCount)
	assert.Zero(t, tripleCount)

	// the linked group and buyer survive
	_, err = s.GetProductGroup(group.ID)
	assert.NoError(t, err)
	_, err = s.GetBuyer(buyer.ID)
	assert.NoError(t, err)
}

func TestDeleteBuyerCascadesTripleLinks(t *testing.T) {
	s := newTestStore(t)

	country := models.Country{NameEnglish: "Netherlands", NameRussian: "Голландия", CountryCode: "NL"}
	require.NoError(t, s.CreateCountry(&country))
	group := models.ProductGroup{Name: "Розы", Code: "ROS"}
	require.NoError(t, s.CreateProductGroup(&group))
	buyer := models.Buyer{Name: "Ivan", Surname: "Petrov", Telegram: "@petrov"}
	require.NoError(t, s.CreateBuyer(&buyer))

	_, err := s.CreateCountryGroupBuyerLink("Голландия", "Розы", "Petrov")
	require.NoError(t, err)

	require.NoError(t, s.DeleteBuyer(buyer.ID))

	var count int64
	require.NoError(t, s.db.Model(&models.CountryGroupBuyerLink{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProductCRUD(t *testing.T) {
	s := newTestStore(t)

	p := models.Product{VBN: "12345", EngDesc: "Rose Red Naomi", Units: models.UnitPieces, Length: 60, ShowColor: true}
	require.NoError(t, s.CreateProduct(&p))

	got, err := s.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "12345", got.VBN)
	assert.Equal(t, "Rose Red Naomi", got.EngDesc)
	assert.Equal(t, models.UnitPieces, got.Units)
	assert.Equal(t, 60, got.Length)

	updated, err := s.UpdateProduct(p.ID, models.ProductUpdate{Grower: strptr("Porta Nova")})
	require.NoError(t, err)
	assert.Equal(t, "Porta Nova", updated.Grower)
	assert.Equal(t, 60, updated.Length)

	require.NoError(t, s.DeleteProduct(p.ID))
	_, err = s.GetProduct(p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupNames(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateCountry(&models.Country{NameEnglish: "Netherlands", NameRussian: "Голландия", CountryCode: "NL"}))
	require.NoError(t, s.CreateCountry(&models.Country{NameEnglish: "Ecuador", NameRussian: "Эквадор", CountryCode: "EC"}))
	require.NoError(t, s.CreateProductGroup(&models.ProductGroup{Name: "Розы", Code: "ROS"}))
	require.NoError(t, s.CreateBuyer(&models.Buyer{Surname: "Petrov", Telegram: "@petrov"}))

	countries, err := s.CountryNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Голландия", "Эквадор"}, countries)

	groups, err := s.GroupNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Розы"}, groups)

	buyers, err := s.BuyerSurnames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Petrov"}, buyers)
}
