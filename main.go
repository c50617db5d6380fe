package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"bozorcha-admin/feedback"
	"bozorcha-admin/forms"
	"bozorcha-admin/gate"
	"bozorcha-admin/models"
	"bozorcha-admin/navigator"
	"bozorcha-admin/pkg/catalog"
	"bozorcha-admin/pkg/config"
	"bozorcha-admin/pkg/logger"
	"bozorcha-admin/pkg/theme"
	"bozorcha-admin/pkg/translator"

	"github.com/joho/godotenv"
)

// app - admin sessiya holati (bitta root kontroller, UI faqat o'qiydi)
type app struct {
	cfg       *config.Config
	client    *catalog.Client
	nav       *navigator.Navigator
	notifier  *feedback.Notifier
	confirmer *feedback.Confirmer
	catForm   *forms.CategoryForm
	prodForm  *forms.ProductForm
	user      *models.UserAuthData
	theme     theme.Theme
	scanner   *bufio.Scanner
}

func main() {
	// .env faylini yuklash
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️  .env fayli topilmadi, environment variablelardan foydalaniladi")
	} else {
		fmt.Println("✅ .env fayli yuklandi")
	}

	cfg := config.LoadConfig()

	if err := logger.InitLogger(cfg.Environment); err != nil {
		fmt.Println("❌ Logger xatosi:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client := catalog.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	ctx := context.Background()

	// 1. Access gate - sessiya boshida aynan bitta lookup
	chatID := gate.ResolveChatID(os.Args[1:], cfg.AdminChatID)
	result := gate.New(client).Check(ctx, chatID)

	switch result.State {
	case gate.StateUnauthorized:
		fmt.Println("")
		fmt.Println("🚫 Ruxsat berilmagan")
		fmt.Println("   Statusingiz CONFIRMED emas yoki chat_id noto'g'ri.")
		fmt.Println("   Iltimos, administrator bilan bog'laning.")
		os.Exit(1)
	case gate.StateError:
		fmt.Println("")
		fmt.Println("❌ Server bilan bog'lanib bo'lmadi")
		fmt.Println("   Qayta urinish uchun dasturni qayta ishga tushiring.")
		os.Exit(1)
	}

	fmt.Printf("✅ Xush kelibsiz, %s!\n", result.User.DisplayName())

	// 2. Navigator root pozitsiyadan boshlanadi
	nav := navigator.New(client)
	notifier := feedback.NewNotifier()

	a := &app{
		cfg:      cfg,
		client:   client,
		nav:      nav,
		notifier: notifier,
		user:     result.User,
		theme:    theme.Load(cfg.ThemeFile),
		scanner:  bufio.NewScanner(os.Stdin),
	}
	a.confirmer = feedback.NewConfirmer(a.askYesNo)
	a.catForm = forms.NewCategoryForm(client, nav)
	a.prodForm = forms.NewProductForm(client, nav)

	if err := nav.NavigateTo(ctx, nil, ""); err != nil {
		notifier.Error("Kategoriyalarni yuklashda xatolik")
	}

	printHelp()
	a.printList()

	// 3. Buyruqlar sikli
	for {
		fmt.Print("> ")
		if !a.scanner.Scan() {
			break
		}
		line := strings.TrimSpace(a.scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		a.handle(ctx, line)
		a.flushNotification()
	}
}

func printHelp() {
	fmt.Println("")
	fmt.Println("📂 Buyruqlar:")
	fmt.Println("   ls                  - Hozirgi ro'yxat")
	fmt.Println("   cd <n>              - n-kategoriyaga kirish")
	fmt.Println("   cd ..               - Bitta pog'ona yuqoriga")
	fmt.Println("   cd /                - Root ga qaytish")
	fmt.Println("   crumb <n>           - Breadcrumbdagi n-bo'limga sakrash")
	fmt.Println("   search <so'z>       - Ro'yxatni filtrlash (bo'sh = tozalash)")
	fmt.Println("   refresh             - Hozirgi pozitsiyani qayta yuklash")
	fmt.Println("   add-cat             - Yangi kategoriya")
	fmt.Println("   edit-cat <n>        - Kategoriyani tahrirlash")
	fmt.Println("   del-cat <n>         - Kategoriyani o'chirish")
	fmt.Println("   add-prod            - Yangi mahsulot")
	fmt.Println("   edit-prod <n>       - Mahsulotni tahrirlash")
	fmt.Println("   del-prod <n>        - Mahsulotni o'chirish")
	fmt.Println("   status <n> <STATUS> - Mahsulot statusi (OPEN/CLOSED/DELETED)")
	fmt.Println("   theme               - Light/dark almashtirish")
	fmt.Println("   help                - Shu ro'yxat")
	fmt.Println("   exit                - Chiqish")
	fmt.Println("")
}

// handle - bitta buyruqni bajarish
func (a *app) handle(ctx context.Context, line string) {
	parts := strings.Fields(line)
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "help":
		printHelp()
	case "ls":
		a.printList()
	case "cd":
		a.cmdCd(ctx, args)
	case "crumb":
		a.cmdCrumb(ctx, args)
	case "search":
		a.nav.SetFilter(strings.Join(args, " "))
		a.printList()
	case "refresh":
		if err := a.nav.Refresh(ctx); err != nil {
			a.notifier.Error(err.Error())
			return
		}
		a.printList()
	case "theme":
		a.theme = theme.Toggle(a.theme)
		if err := theme.Save(a.cfg.ThemeFile, a.theme); err != nil {
			a.notifier.Error("Mavzuni saqlab bo'lmadi")
			return
		}
		a.notifier.Info(fmt.Sprintf("Mavzu: %s", a.theme))
	case "add-cat":
		a.cmdAddCategory(ctx)
	case "edit-cat":
		a.cmdEditCategory(ctx, args)
	case "del-cat":
		a.cmdDeleteCategory(ctx, args)
	case "add-prod":
		a.cmdAddProduct(ctx)
	case "edit-prod":
		a.cmdEditProduct(ctx, args)
	case "del-prod":
		a.cmdDeleteProduct(ctx, args)
	case "status":
		a.cmdProductStatus(ctx, args)
	default:
		fmt.Println("Noma'lum buyruq:", cmd, "('help' ni ko'ring)")
	}
}

// ============================================
// NAVIGATSIYA
// ============================================

func (a *app) cmdCd(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("cd <n> | cd .. | cd /")
		return
	}

	var err error
	switch args[0] {
	case "..":
		err = a.nav.Back(ctx)
	case "/":
		err = a.nav.NavigateTo(ctx, nil, "")
	default:
		category, ok := a.pickCategory(args[0])
		if !ok {
			return
		}
		id := category.ID
		err = a.nav.NavigateTo(ctx, &id, category.LocalizedName(models.LocaleUz))
	}

	if err != nil {
		// Oldingi ro'yxat saqlanib qoladi
		a.notifier.Error("Ro'yxatni yuklashda xatolik")
		return
	}
	a.printList()
}

func (a *app) cmdCrumb(ctx context.Context, args []string) {
	crumbs := a.nav.Breadcrumb()
	index, err := parseIndex(args, len(crumbs))
	if err != nil {
		fmt.Println(err)
		return
	}

	crumb := crumbs[index]
	id := crumb.ID
	if err := a.nav.NavigateTo(ctx, &id, crumb.Name); err != nil {
		a.notifier.Error("Ro'yxatni yuklashda xatolik")
		return
	}
	a.printList()
}

// printList - breadcrumb va hozirgi ro'yxatni chiqarish
func (a *app) printList() {
	crumbs := a.nav.Breadcrumb()
	path := "/"
	for _, crumb := range crumbs {
		path += crumb.Name + "/"
	}
	fmt.Println("")
	fmt.Println("📍", path)

	if a.nav.Mode() == navigator.ViewCategories {
		categories := a.nav.Categories()
		if len(categories) == 0 {
			fmt.Println("   (bo'sh - hali kategoriya yaratilmagan)")
		}
		for i, c := range categories {
			fmt.Printf("   %2d. 📁 %-30s [%s] order=%d\n",
				i+1, c.LocalizedName(models.LocaleUz), c.Status, c.OrderIndex)
		}
	} else {
		now := time.Now()
		products := a.nav.Products()
		if len(products) == 0 {
			fmt.Println("   (bo'sh - hali mahsulot yaratilmagan)")
		}
		for i, p := range products {
			price := fmt.Sprintf("%.0f", p.Price)
			if p.DiscountActive(now) {
				price = fmt.Sprintf("%.0f -> %.0f", p.Price, p.EffectivePrice(now))
			}
			fmt.Printf("   %2d. 🛒 %-30s [%s] narx=%s stock=%d variantlar=%d\n",
				i+1, p.LocalizedName(models.LocaleUz), p.Status, price, p.Stock, len(p.Variants))
		}
	}
	fmt.Println("")
}

// ============================================
// KATEGORIYA FORMALARI
// ============================================

func (a *app) cmdAddCategory(ctx context.Context) {
	a.catForm.OpenForCreate(a.nav.CurrentParentID())
	a.fillCategoryForm()
	a.submitCategoryForm(ctx)
}

func (a *app) cmdEditCategory(ctx context.Context, args []string) {
	category, ok := a.pickCategoryArg(args)
	if !ok {
		return
	}
	a.catForm.OpenForEdit(*category)
	a.fillCategoryForm()
	a.submitCategoryForm(ctx)
}

func (a *app) fillCategoryForm() {
	a.catForm.NameUz = a.prompt("Nomi (uz)", a.catForm.NameUz)

	// AI tarjima - xatolik formani bloklamaydi
	if a.cfg.HasOpenAIConfig() && a.catForm.NameUz != "" && a.askYesNo("AI tarjima", "Qolgan tillarga tarjima qilinsinmi?") {
		names, _ := translator.TranslateCategory(context.Background(), a.catForm.NameUz)
		a.catForm.ApplyTranslations(names)
	}

	a.catForm.NameUzCyrillic = a.prompt("Nomi (kirill)", a.catForm.NameUzCyrillic)
	a.catForm.NameRu = a.prompt("Nomi (ru)", a.catForm.NameRu)
	a.catForm.NameEn = a.prompt("Nomi (en)", a.catForm.NameEn)
	a.catForm.OrderIndex = a.promptInt("Order index", a.catForm.OrderIndex)
	if a.catForm.IsEditing() {
		a.catForm.Status = models.Status(a.prompt("Status (OPEN/CLOSED)", string(a.catForm.Status)))
	}
}

func (a *app) submitCategoryForm(ctx context.Context) {
	if err := a.catForm.Submit(ctx); err != nil {
		// Forma ochiq qoladi, kiritilgan ma'lumot yo'qolmaydi
		a.notifier.Error(err.Error())
		return
	}
	a.notifier.Success("Kategoriya saqlandi")
	a.printList()
}

func (a *app) cmdDeleteCategory(ctx context.Context, args []string) {
	category, ok := a.pickCategoryArg(args)
	if !ok {
		return
	}

	confirmed, err := a.confirmer.Confirm(ctx,
		"Kategoriyani o'chirish",
		fmt.Sprintf("'%s' o'chirilsinmi?", category.LocalizedName(models.LocaleUz)),
		func(ctx context.Context) error {
			return a.client.DeleteCategory(ctx, category.ID)
		})
	if !confirmed {
		return
	}
	if err != nil {
		a.notifier.Error(err.Error())
		return
	}

	a.notifier.Success("Kategoriya o'chirildi")
	if err := a.nav.Refresh(ctx); err == nil {
		a.printList()
	}
}

// ============================================
// MAHSULOT FORMALARI
// ============================================

func (a *app) cmdAddProduct(ctx context.Context) {
	parentID := a.nav.CurrentParentID()
	if parentID == nil || a.nav.Mode() != navigator.ViewProducts {
		fmt.Println("Mahsulot faqat leaf kategoriya ichida yaratiladi")
		return
	}
	a.prodForm.OpenForCreate(*parentID)
	a.fillProductForm()
	a.submitProductForm(ctx)
}

func (a *app) cmdEditProduct(ctx context.Context, args []string) {
	product, ok := a.pickProductArg(args)
	if !ok {
		return
	}
	a.prodForm.OpenForEdit(*product)
	a.fillProductForm()
	a.submitProductForm(ctx)
}

func (a *app) fillProductForm() {
	draft := &a.prodForm.Draft
	draft.NameUz = a.prompt("Nomi (uz)", draft.NameUz)
	draft.DescriptionUz = a.prompt("Tavsif (uz)", draft.DescriptionUz)

	if a.cfg.HasOpenAIConfig() && draft.NameUz != "" && a.askYesNo("AI tarjima", "Qolgan tillarga tarjima qilinsinmi?") {
		names, descriptions, _ := translator.TranslateProduct(context.Background(), draft.NameUz, draft.DescriptionUz)
		a.prodForm.ApplyTranslations(names, descriptions)
	}

	draft.NameUzCyrillic = a.prompt("Nomi (kirill)", draft.NameUzCyrillic)
	draft.NameRu = a.prompt("Nomi (ru)", draft.NameRu)
	draft.NameEn = a.prompt("Nomi (en)", draft.NameEn)
	draft.Price = a.promptFloat("Narxi", draft.Price)
	draft.Stock = a.promptInt("Stock", draft.Stock)
	draft.OrderIndex = a.promptInt("Order index", draft.OrderIndex)
	draft.Status = models.Status(a.prompt("Status (OPEN/CLOSED)", string(draft.Status)))

	draft.DiscountType = models.DiscountType(a.prompt("Chegirma turi (NONE/PERCENT/FIXED)", string(draft.DiscountType)))
	if draft.DiscountType != models.DiscountNone {
		value := a.promptFloat("Chegirma qiymati", 0)
		draft.DiscountValue = &value
		fmt.Printf("   Namuna narx: %.0f\n", a.prodForm.DiscountPreview(time.Now()))
	}

	a.fillVariants()
}

// fillVariants - variant editor sikli (kamida bitta variant kerak)
func (a *app) fillVariants() {
	for {
		fmt.Printf("Variantlar: %d ta", len(a.prodForm.Variants))
		for i, d := range a.prodForm.Variants {
			fmt.Printf(" [%d:%s/%s]", i+1, d.Variant.NameUz, d.State)
		}
		fmt.Println("")

		if !a.askYesNo("Variant", "Variant qo'shilsinmi/tahrirlansinmi?") {
			return
		}

		slot := a.prodForm.Editor.Slot()
		if index := a.promptInt("Tahrirlash uchun raqam (0 = yangi)", 0); index > 0 && index <= len(a.prodForm.Variants) {
			a.prodForm.Editor.BeginEdit(index-1, a.prodForm.Variants[index-1].Variant)
		}

		slot.NameUz = a.prompt("Variant nomi (uz)", slot.NameUz)
		slot.Price = a.promptFloat("Variant narxi", slot.Price)
		slot.Stock = a.promptInt("Variant stock", slot.Stock)
		a.fillVariantImage(slot)

		if err := a.prodForm.SaveVariant(); err != nil {
			fmt.Println("⚠️ ", err)
			a.prodForm.Editor.Cancel()
		}
	}
}

// fillVariantImage - rasm: lokal fayl yuklanadi yoki tayyor URL kiritiladi
func (a *app) fillVariantImage(slot *models.ProductVariant) {
	path := a.prompt("Rasm fayli (bo'sh = URL kiritish)", "")
	if path == "" {
		slot.ImageURL = a.prompt("Rasm URL", slot.ImageURL)
		return
	}

	file, err := os.Open(path)
	if err != nil {
		fmt.Println("⚠️  Faylni ochib bo'lmadi:", err)
		return
	}
	defer file.Close()

	uploaded, err := a.client.UploadFile(context.Background(), filepath.Base(path), file)
	if err != nil {
		a.notifier.Error(err.Error())
		return
	}
	slot.ImageURL = uploaded.URL
	slot.ImgName = uploaded.Name
	slot.ImgSize = uploaded.Size
	fmt.Println("✅ Rasm yuklandi:", uploaded.URL)
}

func (a *app) submitProductForm(ctx context.Context) {
	result, err := a.prodForm.Submit(ctx)
	if err != nil {
		a.notifier.Error(err.Error())
		if result != nil && len(result.Failed()) > 0 {
			// Qisman muvaffaqiyat: forma ochiq, foydalanuvchi qayta ochib tuzatadi
			fmt.Printf("⚠️  %d/%d chaqiruv bajarildi, forma ochiq qoldi\n",
				len(result.Steps)-len(result.Failed()), len(result.Steps))
		}
		return
	}
	a.notifier.Success("Mahsulot saqlandi")
	a.printList()
}

func (a *app) cmdDeleteProduct(ctx context.Context, args []string) {
	product, ok := a.pickProductArg(args)
	if !ok {
		return
	}

	confirmed, err := a.confirmer.Confirm(ctx,
		"Mahsulotni o'chirish",
		fmt.Sprintf("'%s' o'chirilsinmi?", product.LocalizedName(models.LocaleUz)),
		func(ctx context.Context) error {
			return a.client.DeleteProduct(ctx, product.ID)
		})
	if !confirmed {
		return
	}
	if err != nil {
		a.notifier.Error(err.Error())
		return
	}

	a.notifier.Success("Mahsulot o'chirildi")
	if err := a.nav.Refresh(ctx); err == nil {
		a.printList()
	}
}

func (a *app) cmdProductStatus(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("status <n> <OPEN|CLOSED|DELETED>")
		return
	}
	product, ok := a.pickProduct(args[0])
	if !ok {
		return
	}

	if _, err := a.client.ChangeProductStatus(ctx, product.ID, models.Status(args[1])); err != nil {
		a.notifier.Error(err.Error())
		return
	}
	a.notifier.Success("Status o'zgartirildi")
	if err := a.nav.Refresh(ctx); err == nil {
		a.printList()
	}
}

// ============================================
// YORDAMCHILAR
// ============================================

func (a *app) pickCategoryArg(args []string) (*models.Category, bool) {
	if len(args) == 0 {
		fmt.Println("Raqam kiriting, masalan: edit-cat 2")
		return nil, false
	}
	return a.pickCategory(args[0])
}

func (a *app) pickCategory(arg string) (*models.Category, bool) {
	categories := a.nav.Categories()
	index, err := parseIndexArg(arg, len(categories))
	if err != nil {
		fmt.Println(err)
		return nil, false
	}
	return &categories[index], true
}

func (a *app) pickProductArg(args []string) (*models.Product, bool) {
	if len(args) == 0 {
		fmt.Println("Raqam kiriting, masalan: edit-prod 2")
		return nil, false
	}
	return a.pickProduct(args[0])
}

func (a *app) pickProduct(arg string) (*models.Product, bool) {
	products := a.nav.Products()
	index, err := parseIndexArg(arg, len(products))
	if err != nil {
		fmt.Println(err)
		return nil, false
	}
	return &products[index], true
}

func parseIndex(args []string, count int) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("raqam kiriting")
	}
	return parseIndexArg(args[0], count)
}

func parseIndexArg(arg string, count int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > count {
		return 0, fmt.Errorf("1 dan %d gacha raqam kiriting", count)
	}
	return n - 1, nil
}

// prompt - qiymat so'rash (bo'sh kiritilsa default qoladi)
func (a *app) prompt(label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	if !a.scanner.Scan() {
		return current
	}
	value := strings.TrimSpace(a.scanner.Text())
	if value == "" {
		return current
	}
	return value
}

func (a *app) promptInt(label string, current int) int {
	value := a.prompt(label, strconv.Itoa(current))
	n, err := strconv.Atoi(value)
	if err != nil {
		return current
	}
	return n
}

func (a *app) promptFloat(label string, current float64) float64 {
	value := a.prompt(label, strconv.FormatFloat(current, 'f', -1, 64))
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return current
	}
	return f
}

// askYesNo - ha/yo'q savoli (Confirmer uchun Decider)
func (a *app) askYesNo(title, message string) bool {
	fmt.Printf("❓ %s: %s (y/n): ", title, message)
	if !a.scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(a.scanner.Text()))
	return answer == "y" || answer == "yes" || answer == "ha"
}

// flushNotification - faol xabarni konsolga chiqarish
func (a *app) flushNotification() {
	msg := a.notifier.Current()
	if msg == nil {
		return
	}
	switch msg.Severity {
	case feedback.SeveritySuccess:
		fmt.Println("✅", msg.Text)
	case feedback.SeverityError:
		fmt.Println("❌", msg.Text)
	default:
		fmt.Println("ℹ️ ", msg.Text)
	}
	a.notifier.Dismiss()
}
